package ports

import "context"

// CredentialProvider define el puerto que entrega el bearer token a reenviar al backend.
// Se inyecta en el cliente HTTP en lugar de leer un almacenamiento de sesión global.
type CredentialProvider interface {
	// Token devuelve el token (sin el prefijo "Bearer") y si existe uno.
	Token(ctx context.Context) (string, bool)
}
