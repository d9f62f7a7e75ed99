package models

import "time"

type User struct {
	ID           int       `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	CompanyID    int       `json:"company_id" db:"company_id"`
	RoleID       int       `json:"role_id" db:"role_id"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	IsDeleted    bool      `json:"is_deleted" db:"is_deleted"`
	CreatedBy    *int      `json:"created_by" db:"created_by"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// AuthUser is the login lookup row: a user joined with its company and role names.
type AuthUser struct {
	User
	CompanyName string `json:"company_name" db:"company_name"`
	RoleName    string `json:"role_name" db:"role_name"`
}

// UserProfile is the public projection returned by create/list/me. It never
// carries the password hash.
type UserProfile struct {
	ID            int       `json:"id" db:"id"`
	Email         string    `json:"email" db:"email"`
	FirstName     string    `json:"first_name" db:"first_name"`
	LastName      string    `json:"last_name" db:"last_name"`
	CompanyID     int       `json:"company_id" db:"company_id"`
	RoleID        int       `json:"role_id" db:"role_id"`
	CreatedBy     *int      `json:"created_by" db:"created_by"`
	IsActive      bool      `json:"is_active" db:"is_active"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	CompanyName   string    `json:"company_name" db:"company_name"`
	RoleName      string    `json:"role_name" db:"role_name"`
	CreatedByName *string   `json:"created_by_name" db:"created_by_name"`
}

type CreateUserInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	RoleID    int    `json:"role_id"`
	CompanyID int    `json:"company_id"`
}

type Pagination struct {
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	TotalUsers  int  `json:"total_users"`
	Limit       int  `json:"limit"`
	HasNext     bool `json:"has_next"`
	HasPrev     bool `json:"has_prev"`
}
