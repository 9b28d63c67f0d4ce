package repository

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// ProfileRepository define el puerto de persistencia para Profile (DIP).
// Los Get* devuelven (nil, nil) cuando el registro no existe.
type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
	GetByEmail(ctx context.Context, email string) (*entity.Profile, error)
	GetByIdentityID(ctx context.Context, identityID string) (*entity.Profile, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Profile, error)
	// SoftDelete marca el perfil como inactive. Idempotente.
	SoftDelete(ctx context.Context, id string) error
	// Delete borra la fila. Solo se usa como compensación de un provisioning fallido.
	Delete(ctx context.Context, id string) error
}
