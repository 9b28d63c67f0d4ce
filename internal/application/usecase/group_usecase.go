package usecase

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// GroupUseCase consultas de grupos de asignación (picker del back-office).
type GroupUseCase struct {
	repo repository.GroupRepository
}

// NewGroupUseCase construye el caso de uso con el puerto de persistencia.
func NewGroupUseCase(repo repository.GroupRepository) *GroupUseCase {
	return &GroupUseCase{repo: repo}
}

// List devuelve todos los grupos.
func (uc *GroupUseCase) List(ctx context.Context) ([]*dto.GroupResponse, error) {
	groups, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.GroupResponse, len(groups))
	for i, g := range groups {
		out[i] = &dto.GroupResponse{ID: g.ID, Name: g.Name}
	}
	return out, nil
}
