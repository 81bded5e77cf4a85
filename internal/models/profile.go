package models

import "time"

// Role values recognised by the admin guard. Only RoleAdmin passes it.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Profile represents an account in the store. Accounts are created at signup
// by the storefront; the admin service reads them and only ever updates Role.
type Profile struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	FullName  string    `json:"full_name" gorm:"type:varchar(255)"`
	Password  string    `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	Role      string    `json:"role" gorm:"type:varchar(32);default:customer"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the table aligned with the storefront's schema.
func (Profile) TableName() string {
	return "profiles"
}
