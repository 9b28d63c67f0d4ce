package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepo {
	return &EmployeeRepo{pool: pool}
}

// Create inserta el registro laboral con guarda de idempotencia: si ya existe un
// empleado para ese profile_id, copia su id en employee y reporta éxito sin
// insertar (protege contra reintentos de la misma alta).
func (r *EmployeeRepo) Create(ctx context.Context, employee *entity.Employee) error {
	existing, err := r.GetByProfileID(ctx, employee.ProfileID)
	if err != nil {
		return err
	}
	if existing != nil {
		employee.ID = existing.ID
		return nil
	}

	query := `
		INSERT INTO employees (id, profile_id, position, group_id, salary, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.pool.Exec(ctx, query,
		employee.ID, employee.ProfileID, employee.Position, employee.GroupID,
		employee.Salary, employee.CreatedAt, employee.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			// La única FK nullable es group_id; la de profile_id no puede fallar
			// porque el perfil se insertó en el paso anterior de la misma alta.
			if name := constraintName(err); name == "" || strings.Contains(name, "group") {
				return domain.ErrInvalidGroupReference
			}
			return fmt.Errorf("insert employee: %w", err)
		}
		if isUniqueViolation(err) {
			// Otro insert ganó la carrera entre la guarda y este Exec.
			return domain.ErrEmployeeAlreadyExists
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByProfileID devuelve el empleado asociado al perfil, o (nil, nil) si no hay.
func (r *EmployeeRepo) GetByProfileID(ctx context.Context, profileID string) (*entity.Employee, error) {
	query := `
		SELECT id, profile_id, position, group_id, salary, created_at, updated_at
		FROM employees WHERE profile_id = $1`
	var e entity.Employee
	err := r.pool.QueryRow(ctx, query, profileID).Scan(
		&e.ID, &e.ProfileID, &e.Position, &e.GroupID, &e.Salary, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by profile: %w", err)
	}
	return &e, nil
}
