package logger

import (
	"time"

	"go.uber.org/zap"
)

// Campos estándar. Usar siempre estos helpers en vez de zap.String suelto
// para que los nombres de campo no diverjan entre capas.

func RequestID(v string) zap.Field { return zap.String("request_id", v) }

func Method(v string) zap.Field { return zap.String("method", v) }

func Path(v string) zap.Field { return zap.String("path", v) }

func Status(v int) zap.Field { return zap.Int("status", v) }

func Duration(v time.Duration) zap.Field { return zap.Duration("duration", v) }

func Bytes(v int) zap.Field { return zap.Int("bytes", v) }

// UserID identifica al principal autenticado.
func UserID(v string) zap.Field { return zap.String("user_id", v) }

// Email solo en debug; cuidado en prod.
func Email(v string) zap.Field { return zap.String("email", v) }

// View es el path de vista afectado por una invalidación.
func View(v string) zap.Field { return zap.String("view", v) }

// Bucket y Key identifican un objeto del object store.
func Bucket(v string) zap.Field { return zap.String("bucket", v) }

func Key(v string) zap.Field { return zap.String("key", v) }

// Provider es el proveedor de una cuenta conectada ("github", "google").
func Provider(v string) zap.Field { return zap.String("provider", v) }

// Layer es la capa de origen: "controller", "service", "repository".
func Layer(v string) zap.Field { return zap.String("layer", v) }

// Component es el componente/módulo dentro de la capa.
func Component(v string) zap.Field { return zap.String("component", v) }

// Op es la operación actual, formato "Tipo.Método".
func Op(v string) zap.Field { return zap.String("op", v) }

func Err(err error) zap.Field { return zap.Error(err) }

func Count(v int) zap.Field { return zap.Int("count", v) }

func String(key, v string) zap.Field { return zap.String(key, v) }

func Bool(key string, v bool) zap.Field { return zap.Bool(key, v) }

func Any(key string, v any) zap.Field { return zap.Any(key, v) }

// Stack adjunta un stack trace capturado con debug.Stack().
func Stack(b []byte) zap.Field { return zap.ByteString("stack", b) }
