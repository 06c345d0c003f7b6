// Package repository define las entidades del dominio y los puertos de
// persistencia (row store). Las implementaciones viven en internal/store.
package repository
