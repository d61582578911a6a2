package session

import (
	"context"
	"strings"

	"github.com/jhoicas/belleza-catalog-api/internal/application/ports"
)

var _ ports.CredentialProvider = (*ContextProvider)(nil)

type tokenKey struct{}

// WithToken adjunta al contexto el bearer token de la sesión del llamador.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, strings.TrimSpace(token))
}

// TokenFrom devuelve el token adjuntado con WithToken.
func TokenFrom(ctx context.Context) (string, bool) {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token, token != ""
}

// ContextProvider entrega el token de la sesión del llamador y, si no hay, el token de
// servicio configurado (BACKEND_SERVICE_TOKEN). Vacío en ambos casos = sin Authorization.
type ContextProvider struct {
	serviceToken string
}

// NewContextProvider construye el proveedor.
func NewContextProvider(serviceToken string) *ContextProvider {
	return &ContextProvider{serviceToken: strings.TrimSpace(serviceToken)}
}

func (p *ContextProvider) Token(ctx context.Context) (string, bool) {
	if token, ok := TokenFrom(ctx); ok {
		return token, true
	}
	return p.serviceToken, p.serviceToken != ""
}
