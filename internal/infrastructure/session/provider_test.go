package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/belleza-catalog-api/internal/infrastructure/session"
)

func TestContextProvider_PrefiereTokenDeSesion(t *testing.T) {
	p := session.NewContextProvider("svc")

	token, ok := p.Token(session.WithToken(context.Background(), " user "))
	assert.True(t, ok)
	assert.Equal(t, "user", token)

	token, ok = p.Token(context.Background())
	assert.True(t, ok)
	assert.Equal(t, "svc", token)
}

func TestContextProvider_SinTokens(t *testing.T) {
	p := session.NewContextProvider("")

	_, ok := p.Token(context.Background())
	assert.False(t, ok)

	_, ok = p.Token(session.WithToken(context.Background(), "   "))
	assert.False(t, ok, "un token en blanco no cuenta como sesión")
}
