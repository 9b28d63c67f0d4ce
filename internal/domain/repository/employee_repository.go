package repository

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
type EmployeeRepository interface {
	// Create inserta el registro. Devuelve domain.ErrEmployeeAlreadyExists si otro
	// insert ganó la carrera sobre el constraint único de profile_id, y
	// domain.ErrInvalidGroupReference si group_id no referencia un grupo existente.
	Create(ctx context.Context, employee *entity.Employee) error
	// GetByProfileID devuelve (nil, nil) si el perfil no tiene empleado asociado.
	GetByProfileID(ctx context.Context, profileID string) (*entity.Employee, error)
}
