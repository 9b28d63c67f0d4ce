package entity

import "time"

// Group grupo de asignación de empleados (equipo/área).
type Group struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
