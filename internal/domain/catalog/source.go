package catalog

import "context"

// Source es una fuente del catálogo (tier): sabe consultar exactamente un upstream y
// normalizar su resultado a la forma canónica T.
type Source[T any] interface {
	// Name identifica la fuente en logs y métricas.
	Name() string
	// Resolve consulta la fuente. Un slice vacío sin error significa "sin resultado usable".
	Resolve(ctx context.Context, f Filters) ([]T, error)
}
