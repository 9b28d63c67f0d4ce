package repository

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// GroupRepository define el puerto de persistencia para Group (DIP).
type GroupRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Group, error)
	List(ctx context.Context) ([]*entity.Group, error)
}
