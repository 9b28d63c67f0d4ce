package staff

import "context"

// IdentityProvider puerto hacia el servicio de identidad (API admin estilo GoTrue).
// Es el dueño de la credencial de login; este servicio nunca toca su almacenamiento
// directamente.
type IdentityProvider interface {
	// CreateUser crea la credencial y devuelve su id. Errores esperables:
	// domain.ErrEmailAlreadyRegistered si el servicio reporta el email como tomado
	// (el chequeo autoritativo), domain.ErrProviderUnavailable ante fallo de
	// transporte o del servicio.
	CreateUser(ctx context.Context, email, password string, metadata map[string]any) (string, error)
	// DeleteUser borra la credencial. Solo se usa como compensación de un alta fallida.
	DeleteUser(ctx context.Context, identityID string) error
	// DisableUser marca la credencial como inutilizable sin borrarla: revoca la
	// confirmación y estampa disabled_at/disabled_reason en metadata.
	DisableUser(ctx context.Context, identityID, reason string) error
}
