package usecase

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// ProfileUseCase consultas de perfiles para las pantallas del back-office.
type ProfileUseCase struct {
	repo repository.ProfileRepository
}

// NewProfileUseCase construye el caso de uso con el puerto de persistencia.
func NewProfileUseCase(repo repository.ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{repo: repo}
}

// GetByID obtiene un perfil por ID. Devuelve (nil, nil) si no existe.
func (uc *ProfileUseCase) GetByID(ctx context.Context, id string) (*dto.ProfileResponse, error) {
	profile, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}
	return ToProfileResponse(profile), nil
}

// List lista perfiles con paginación.
func (uc *ProfileUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.ProfileResponse, error) {
	page.DefaultPage()
	profiles, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProfileResponse, len(profiles))
	for i, p := range profiles {
		out[i] = ToProfileResponse(p)
	}
	return out, nil
}

// ToProfileResponse mapea la entidad a su DTO de salida (sin password hash).
func ToProfileResponse(p *entity.Profile) *dto.ProfileResponse {
	if p == nil {
		return nil
	}
	return &dto.ProfileResponse{
		ID:          p.ID,
		IdentityID:  p.IdentityID,
		Email:       p.Email,
		FullName:    p.FullName,
		Role:        p.Role,
		Status:      p.Status,
		Phone:       p.Phone,
		Address:     p.Address,
		DateOfBirth: p.DateOfBirth,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
