package entity

import "time"

// Roles válidos para Profile.
const (
	RoleAdmin    = "admin"
	RoleRRHH     = "rrhh"
	RoleOperador = "operador"
)

// Estados válidos para Profile.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// ValidRole indica si el rol pertenece al catálogo.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleRRHH, RoleOperador:
		return true
	}
	return false
}

// Profile representa el perfil de negocio de un miembro del staff.
// Mientras Status es "active" referencia exactamente una credencial (IdentityID)
// en el servicio de identidad; el email es único entre todos los perfiles.
type Profile struct {
	ID           string
	IdentityID   string // id de la credencial en el servicio de identidad
	Email        string
	PasswordHash string // espejo bcrypt para el login del propio back-office
	FullName     string
	Role         string // admin, rrhh, operador
	Status       string // active, inactive
	Phone        string
	Address      string
	DateOfBirth  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
