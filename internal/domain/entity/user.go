package entity

import "time"

// User cuenta de personal de sucursal o administración. PasswordHash guarda
// bcrypt; el login/autorización queda fuera de este servicio.
type User struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash string
	Role         string // admin | staff
	BranchID     *string
	IsActive     bool
	CreatedAt    time.Time
}
