package auth

import "hrdesk/internal/platform/wiretime"

type User struct {
	ID         string         `json:"id"`
	Email      string         `json:"email"`
	Name       string         `json:"name"`
	Role       string         `json:"role"`
	EmployeeID string         `json:"employeeId,omitempty"`
	CreatedAt  wiretime.Nanos `json:"createdAt"`
}

// UserContext is the authenticated caller carried on the request context.
type UserContext struct {
	UserID     string
	Role       string
	EmployeeID string
}

type Credentials struct {
	User
	PasswordHash string
}

// CreateUserInput is an account created by an admin. An empty role means guest.
type CreateUserInput struct {
	Email      string `json:"email" validate:"required,email"`
	Name       string `json:"name"`
	Password   string `json:"password" validate:"required"`
	Role       string `json:"role"`
	EmployeeID string `json:"employeeId" validate:"omitempty,uuid"`
}
