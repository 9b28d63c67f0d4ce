package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee representa el registro laboral asociado a un Profile.
// Existe a lo sumo un Employee por Profile (constraint único sobre ProfileID);
// GroupID es opcional y referencia un grupo de asignación.
type Employee struct {
	ID        string
	ProfileID string
	Position  string
	GroupID   *string // nil = sin grupo asignado
	Salary    decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
