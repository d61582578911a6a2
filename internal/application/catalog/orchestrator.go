package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/belleza-catalog-api/internal/domain"
	dcatalog "github.com/jhoicas/belleza-catalog-api/internal/domain/catalog"
	"github.com/jhoicas/belleza-catalog-api/internal/metrics"
)

// Tier una fuente dentro de la cadena de fallback junto con su política.
type Tier[T any] struct {
	Source dcatalog.Source[T]
	// When decide si el tier participa en la petición; nil = siempre.
	When func(dcatalog.Filters) bool
	// TrustEmpty decide si un resultado vacío de este tier es definitivo; nil = nunca.
	TrustEmpty func(dcatalog.Filters) bool
}

// Chain orquestador de fallback: recorre los tiers en orden estricto de prioridad y se
// detiene en el primero que devuelve un resultado usable. El último tier aplicable es el
// piso: su resultado se devuelve sin condiciones.
//
// No hay paralelismo: un tier de menor prioridad nunca se consulta si uno superior ya
// respondió. La única condición de error es la cancelación (domain.ErrAborted).
type Chain[T any] struct {
	entity string
	tiers  []Tier[T]
	log    zerolog.Logger
}

// NewChain construye la cadena; los tiers sin fuente se descartan.
func NewChain[T any](entity string, log zerolog.Logger, tiers ...Tier[T]) *Chain[T] {
	kept := make([]Tier[T], 0, len(tiers))
	for _, t := range tiers {
		if t.Source != nil {
			kept = append(kept, t)
		}
	}
	return &Chain[T]{
		entity: entity,
		tiers:  kept,
		log:    log.With().Str("entity", entity).Logger(),
	}
}

// Tiers nombres de los tiers en orden de prioridad.
func (c *Chain[T]) Tiers() []string {
	names := make([]string, len(c.tiers))
	for i, t := range c.tiers {
		names[i] = t.Source.Name()
	}
	return names
}

// Resolve ejecuta la cadena para los filtros dados. Nunca devuelve nil sin error.
func (c *Chain[T]) Resolve(ctx context.Context, f dcatalog.Filters) ([]T, error) {
	active := make([]Tier[T], 0, len(c.tiers))
	for _, t := range c.tiers {
		if t.When != nil && !t.When(f) {
			metrics.IncTierOutcome(c.entity, t.Source.Name(), metrics.OutcomeSkipped)
			continue
		}
		active = append(active, t)
	}

	for i, tier := range active {
		name := tier.Source.Name()
		if err := ctx.Err(); err != nil {
			metrics.IncTierOutcome(c.entity, name, metrics.OutcomeAborted)
			return nil, abortedAt(name, err)
		}
		floor := i == len(active)-1

		start := time.Now()
		items, err := tier.Source.Resolve(ctx, f)
		metrics.ObserveTier(c.entity, name, start)

		if cause := abortCause(ctx, err); cause != nil {
			metrics.IncTierOutcome(c.entity, name, metrics.OutcomeAborted)
			c.log.Debug().Str("tier", name).Msg("resolución cancelada")
			return nil, abortedAt(name, cause)
		}
		if err != nil {
			metrics.IncTierOutcome(c.entity, name, metrics.OutcomeError)
			c.log.Warn().Err(err).Str("tier", name).Bool("floor", floor).Msg("fuente del catálogo falló, se intenta el siguiente tier")
			if floor {
				return []T{}, nil
			}
			continue
		}
		if len(items) > 0 {
			metrics.IncTierOutcome(c.entity, name, metrics.OutcomeHit)
			c.log.Debug().Str("tier", name).Int("count", len(items)).Msg("catálogo resuelto")
			return items, nil
		}

		metrics.IncTierOutcome(c.entity, name, metrics.OutcomeEmpty)
		if floor {
			return []T{}, nil
		}
		if tier.TrustEmpty != nil && tier.TrustEmpty(f) {
			c.log.Debug().Str("tier", name).Msg("resultado vacío definitivo")
			return []T{}, nil
		}
	}
	return []T{}, nil
}

// abortCause devuelve la causa si la llamada terminó por cancelación del llamador.
func abortCause(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if errors.Is(err, domain.ErrAborted) || errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func abortedAt(tier string, cause error) error {
	if errors.Is(cause, domain.ErrAborted) {
		return cause
	}
	return fmt.Errorf("%w en tier %s: %v", domain.ErrAborted, tier, cause)
}
