// Package storage define el puerto del object store: blobs direccionados
// por bucket+key con URL pública. Implementaciones: fs (disco) y memory
// (tests / modo offline).
package storage

import "context"

// ObjectStore define las operaciones sobre objetos.
type ObjectStore interface {
	// Upload guarda un objeto bajo bucket/key, reemplazando si existe.
	Upload(ctx context.Context, bucket, key string, data []byte, contentType string) error

	// PublicURL retorna la URL pública del objeto, u ok=false si no se
	// puede derivar una.
	PublicURL(bucket, key string) (url string, ok bool)

	// Remove elimina objetos. Keys inexistentes se ignoran.
	Remove(ctx context.Context, bucket string, keys ...string) error
}
