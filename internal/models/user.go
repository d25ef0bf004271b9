package models

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// UserRole represents the role of a user in the system
type UserRole string

const (
	RoleClient    UserRole = "client"
	RoleOrganizer UserRole = "organizer"
	RoleAdmin     UserRole = "admin"
)

// User represents a user in the system
type User struct {
	ID           int       `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	Role         UserRole  `json:"role" db:"role"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// UserCreateRequest represents the data needed to register a new user
type UserCreateRequest struct {
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Role      UserRole `json:"role"`
}

// UserUpdateRequest represents the profile fields a user can change
type UserUpdateRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

var userEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Validate validates user registration data
func (req *UserCreateRequest) Validate() error {
	if err := validateUserEmail(req.Email); err != nil {
		return err
	}

	if err := validateUserPassword(req.Password); err != nil {
		return err
	}

	if err := validateUserName(req.FirstName, req.LastName); err != nil {
		return err
	}

	return validateUserRole(req.Role)
}

// Validate validates profile update data
func (req *UserUpdateRequest) Validate() error {
	return validateUserName(req.FirstName, req.LastName)
}

func validateUserEmail(email string) error {
	if email == "" {
		return errors.New("email is required")
	}

	if len(email) > 255 {
		return errors.New("email must be less than 255 characters")
	}

	if !userEmailRegex.MatchString(email) {
		return errors.New("email format is invalid")
	}

	return nil
}

func validateUserPassword(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}

	if len(password) > 72 {
		return errors.New("password must be less than 72 characters")
	}

	return nil
}

func validateUserName(firstName, lastName string) error {
	if strings.TrimSpace(firstName) == "" {
		return errors.New("first name is required")
	}

	if strings.TrimSpace(lastName) == "" {
		return errors.New("last name is required")
	}

	if len(firstName) > 100 || len(lastName) > 100 {
		return errors.New("names must be less than 100 characters")
	}

	return nil
}

func validateUserRole(role UserRole) error {
	switch role {
	case RoleClient, RoleOrganizer, RoleAdmin:
		return nil
	default:
		return errors.New("invalid user role")
	}
}

// FullName returns the user's full name
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// IsClient returns true if the user holds the client role
func (u *User) IsClient() bool {
	return u.Role == RoleClient
}

// IsOrganizer returns true if the user holds the organizer role
func (u *User) IsOrganizer() bool {
	return u.Role == RoleOrganizer
}

// IsAdmin returns true if the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanPurchase returns true if the user may create orders
func (u *User) CanPurchase() bool {
	return u.IsActive && u.Role == RoleClient
}
