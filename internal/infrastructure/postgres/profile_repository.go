package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementación del puerto ProfileRepository sobre PostgreSQL.
type ProfileRepo struct {
	pool *pgxpool.Pool
}

// NewProfileRepository construye el adaptador de persistencia para perfiles.
func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

const profileColumns = `id, identity_id, email, password_hash, full_name, role, status, phone, address, date_of_birth, created_at, updated_at`

// Create persiste un nuevo perfil. Devuelve domain.ErrDuplicateEmail si el email
// viola el constraint único.
func (r *ProfileRepo) Create(ctx context.Context, p *entity.Profile) error {
	query := `
		INSERT INTO profiles (id, identity_id, email, password_hash, full_name, role, status, phone, address, date_of_birth, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.IdentityID, p.Email, p.PasswordHash, p.FullName, p.Role, p.Status,
		p.Phone, p.Address, p.DateOfBirth, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// GetByID obtiene un perfil por ID.
func (r *ProfileRepo) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	return r.getOne(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)
}

// GetByEmail obtiene un perfil por email. Es la consulta del precheck de unicidad.
func (r *ProfileRepo) GetByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	return r.getOne(ctx, `SELECT `+profileColumns+` FROM profiles WHERE email = $1 LIMIT 1`, email)
}

// GetByIdentityID obtiene un perfil por el id de su credencial de identidad.
func (r *ProfileRepo) GetByIdentityID(ctx context.Context, identityID string) (*entity.Profile, error) {
	return r.getOne(ctx, `SELECT `+profileColumns+` FROM profiles WHERE identity_id = $1 LIMIT 1`, identityID)
}

func (r *ProfileRepo) getOne(ctx context.Context, query string, arg any) (*entity.Profile, error) {
	var p entity.Profile
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.IdentityID, &p.Email, &p.PasswordHash, &p.FullName, &p.Role, &p.Status,
		&p.Phone, &p.Address, &p.DateOfBirth, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

// List lista perfiles con paginación.
func (r *ProfileRepo) List(ctx context.Context, limit, offset int) ([]*entity.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Profile
	for rows.Next() {
		var p entity.Profile
		if err := rows.Scan(
			&p.ID, &p.IdentityID, &p.Email, &p.PasswordHash, &p.FullName, &p.Role, &p.Status,
			&p.Phone, &p.Address, &p.DateOfBirth, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// SoftDelete marca el perfil como inactive. Aplicarlo dos veces es un no-op.
func (r *ProfileRepo) SoftDelete(ctx context.Context, id string) error {
	query := `UPDATE profiles SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, entity.StatusInactive, time.Now())
	if err != nil {
		return fmt.Errorf("soft delete profile: %w", err)
	}
	return nil
}

// Delete borra la fila. Solo se usa como compensación de un provisioning fallido.
func (r *ProfileRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}
