package model

import "time"

// UserEntity represents the users table entity
type UserEntity struct {
	ID           uint64     `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	Email        string     `db:"email" json:"email"`
	Phone        string     `db:"phone" json:"phone"`
	Address      string     `db:"address" json:"address"`
	PasswordHash string     `db:"password" json:"-"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// UserFilter for querying users
type UserFilter struct {
	ID    uint64
	Email string
}

// Contact is the snapshot of a user copied onto cart and order rows.
type Contact struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

func (u *UserEntity) Contact() Contact {
	return Contact{Name: u.Name, Phone: u.Phone, Email: u.Email, Address: u.Address}
}

// SignupRequest for user registration
type SignupRequest struct {
	Name         string `json:"name" label:"Name" validate:"required"`
	Email        string `json:"email" label:"Email" validate:"required,email"`
	Password     string `json:"password" label:"Password" validate:"required,min=6"`
	PasswordConf string `json:"passwordConf" label:"Password Confirm" validate:"required,min=6,eqfield=Password"`
	Phone        string `json:"phone" label:"Phone" validate:"required"`
	Address      string `json:"address" label:"Address" validate:"required"`
}

type LoginRequest struct {
	Email      string `json:"email" label:"Email" validate:"required,email"`
	Password   string `json:"password" label:"Password" validate:"required"`
	RememberMe Flag   `json:"remember_me" swaggertype:"boolean"`
}

type LoginResponse struct {
	BaseResponse
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"Bearer"`
	ExpiresAt   string `json:"expires_at" example:"2020-10-21 14:03:00"`
}

// Identity is the authenticated caller resolved from a bearer token.
type Identity struct {
	UserID    uint64
	SessionID string
}
