package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")

	// ErrAborted indica que el llamador canceló la resolución. Nunca se convierte en un
	// intento de fallback: siempre se propaga tal cual.
	ErrAborted = errors.New("solicitud cancelada")
)

// UpstreamError describe una fuente del catálogo que falló por completo
// (red, respuesta no-2xx, sobre JSON malformado, error de consulta SQL).
type UpstreamError struct {
	Source string
	Status int // código HTTP cuando aplica; 0 en fuentes SQL
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fuente %s: HTTP %d: %v", e.Source, e.Status, e.Err)
	}
	return fmt.Sprintf("fuente %s: %v", e.Source, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// MutationError es el fallo de una escritura contra el backend. El mensaje es el cuerpo
// crudo de la respuesta, sin adornos, para que el llamador lo muestre directamente.
type MutationError struct {
	Status int
	Body   string
}

func (e *MutationError) Error() string { return e.Body }

// IsAborted reporta si err corresponde a una cancelación del llamador.
func IsAborted(err error) bool {
	return errors.Is(err, ErrAborted)
}
