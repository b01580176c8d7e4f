// file: model/admin.go

package model

import "time"

// Admin is a console operator allowed to decide on registrations.
type Admin struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// AdminSession records an issued admin token so that logout can revoke it.
type AdminSession struct {
	ID        int       `json:"id"`
	AdminID   int       `json:"admin_id"`
	TokenHash string    `json:"-"` // The hash is not exposed in JSON responses.
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
