package domain

import "time"

// RoleProductManagement grants creation and deletion of products.
const RoleProductManagement = "ProductManagement"

// AdminAccount is an identity able to sign in to the administration area.
// PasswordHash is produced and checked by the identity adapter only.
type AdminAccount struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Roles        []string  `json:"roles"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
