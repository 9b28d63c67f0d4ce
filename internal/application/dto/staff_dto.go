package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// dateLayout formato esperado para date_of_birth.
const dateLayout = "2006-01-02"

// ProvisionStaffRequest entrada para dar de alta un miembro del staff.
// Crea credencial (servicio de identidad) + perfil + empleado en una sola llamada.
//
// Restricciones por campo:
//
//	email          requerido, formato email, único
//	password       requerido, mínimo 8 caracteres
//	fullName       requerido
//	role           requerido, uno de: admin, rrhh, operador
//	position       requerido
//	phone          opcional
//	groupId        opcional ("" = sin grupo)
//	status         opcional, default "active"
//	date_of_birth  opcional, formato YYYY-MM-DD
//	address        opcional
//	salary         opcional, decimal >= 0
type ProvisionStaffRequest struct {
	Email       string          `json:"email" validate:"required,email"`
	Password    string          `json:"password" validate:"required,min=8"`
	FullName    string          `json:"fullName" validate:"required,max=200"`
	Phone       string          `json:"phone" validate:"omitempty,max=30"`
	Role        string          `json:"role" validate:"required,oneof=admin rrhh operador"`
	Position    string          `json:"position" validate:"required,max=200"`
	GroupID     string          `json:"groupId" validate:"omitempty,uuid"`
	Status      string          `json:"status" validate:"omitempty,oneof=active inactive"`
	DateOfBirth string          `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Address     string          `json:"address" validate:"omitempty,max=300"`
	Salary      decimal.Decimal `json:"salary"`
}

// Validate aplica la tabla de restricciones antes de cualquier efecto lateral.
// Todos los fallos se reportan como domain.ErrValidation envuelto con el detalle.
func (r *ProvisionStaffRequest) Validate() error {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.FullName = strings.TrimSpace(r.FullName)
	r.Position = strings.TrimSpace(r.Position)

	switch {
	case r.Email == "":
		return fmt.Errorf("%w: email es requerido", domain.ErrValidation)
	case !strings.Contains(r.Email, "@") || strings.ContainsAny(r.Email, " \t"):
		return fmt.Errorf("%w: email con formato inválido", domain.ErrValidation)
	case len(r.Password) < 8:
		return fmt.Errorf("%w: password debe tener al menos 8 caracteres", domain.ErrValidation)
	case r.FullName == "":
		return fmt.Errorf("%w: fullName es requerido", domain.ErrValidation)
	case r.Position == "":
		return fmt.Errorf("%w: position es requerido", domain.ErrValidation)
	}
	if !entity.ValidRole(r.Role) {
		return fmt.Errorf("%w: role %q no es válido", domain.ErrValidation, r.Role)
	}
	if r.Status == "" {
		r.Status = entity.StatusActive
	}
	if r.Status != entity.StatusActive && r.Status != entity.StatusInactive {
		return fmt.Errorf("%w: status %q no es válido", domain.ErrValidation, r.Status)
	}
	if r.DateOfBirth != "" {
		if _, err := time.Parse(dateLayout, r.DateOfBirth); err != nil {
			return fmt.Errorf("%w: date_of_birth debe ser YYYY-MM-DD", domain.ErrValidation)
		}
	}
	if r.Salary.IsNegative() {
		return fmt.Errorf("%w: salary no puede ser negativo", domain.ErrValidation)
	}
	return nil
}

// ParsedDateOfBirth devuelve la fecha de nacimiento parseada o nil si no se envió.
// Asume que Validate ya pasó.
func (r *ProvisionStaffRequest) ParsedDateOfBirth() *time.Time {
	if r.DateOfBirth == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, r.DateOfBirth)
	if err != nil {
		return nil
	}
	return &t
}

// ProvisionStaffData ids creados por un alta exitosa.
type ProvisionStaffData struct {
	UserID     string `json:"userId"` // id de la credencial en el servicio de identidad
	ProfileID  string `json:"profileId"`
	EmployeeID string `json:"employeeId"`
}

// DeprovisionStaffRequest entrada para dar de baja un miembro del staff.
// UserID es el id de identidad (igual a Profile.IdentityID).
type DeprovisionStaffRequest struct {
	UserID string `json:"userId" validate:"required"`
	Reason string `json:"reason" validate:"omitempty,max=300"`
}

// ProfileResponse salida de un perfil (sin password hash).
type ProfileResponse struct {
	ID          string     `json:"id"`
	IdentityID  string     `json:"identityId"`
	Email       string     `json:"email"`
	FullName    string     `json:"fullName"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	Phone       string     `json:"phone,omitempty"`
	Address     string     `json:"address,omitempty"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// GroupResponse salida de un grupo de asignación.
type GroupResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LoginRequest entrada para login del back-office.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token   string          `json:"token"`
	Profile ProfileResponse `json:"profile"`
}
