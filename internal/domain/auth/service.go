package auth

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"hrdesk/internal/platform/wiretime"
)

type Service struct {
	Store    StoreAPI
	Secret   string
	TokenTTL time.Duration
}

func NewService(store StoreAPI, secret string, ttl time.Duration) *Service {
	return &Service{Store: store, Secret: secret, TokenTTL: ttl}
}

type LoginResult struct {
	Token     string         `json:"token"`
	ExpiresAt wiretime.Nanos `json:"expiresAt"`
	User      User           `json:"user"`
}

// Login checks credentials and issues a signed session token. Unknown emails
// and wrong passwords fail identically.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	creds, err := s.Store.FindByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		return LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return LoginResult{}, err
	}
	if err := CheckPassword(creds.PasswordHash, password); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := GenerateToken(s.Secret, Claims{UserID: creds.ID, Role: creds.Role}, s.TokenTTL)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Token: token, ExpiresAt: wiretime.FromTime(time.Now().Add(s.TokenTTL)), User: creds.User}, nil
}

func (s *Service) Me(ctx context.Context, userID string) (User, error) {
	return s.Store.GetUser(ctx, userID)
}

func (s *Service) SaveProfile(ctx context.Context, userID, name string) (User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return User{}, ErrNameRequired
	}
	if err := s.Store.UpdateName(ctx, userID, name); err != nil {
		return User{}, err
	}
	return s.Store.GetUser(ctx, userID)
}

func (s *Service) AssociateEmployee(ctx context.Context, userID, employeeID string) error {
	if _, err := uuid.Parse(userID); err != nil {
		return ErrUserNotFound
	}
	return s.Store.AssociateEmployee(ctx, userID, employeeID)
}

const minPasswordLength = 8

// CreateUser registers a login account on an admin's behalf. Accounts start as
// guests unless a role is given.
func (s *Service) CreateUser(ctx context.Context, in CreateUserInput) (User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return User{}, ErrInvalidEmail
	}
	if len(in.Password) < minPasswordLength {
		return User{}, ErrWeakPassword
	}
	role := strings.TrimSpace(in.Role)
	if role == "" {
		role = RoleGuest
	}
	if !ValidRole(role) {
		return User{}, ErrInvalidRole
	}
	employeeID := strings.TrimSpace(in.EmployeeID)
	if employeeID != "" {
		if _, err := uuid.Parse(employeeID); err != nil {
			return User{}, ErrEmployeeNotFound
		}
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return User{}, err
	}
	return s.Store.CreateUser(ctx, User{
		Email:      email,
		Name:       strings.TrimSpace(in.Name),
		Role:       role,
		EmployeeID: employeeID,
	}, hash)
}

func (s *Service) ListUsers(ctx context.Context) ([]User, error) {
	return s.Store.ListUsers(ctx)
}

// AssignRole changes a user's role. Admins cannot demote themselves.
func (s *Service) AssignRole(ctx context.Context, callerID, userID, role string) (User, error) {
	if !ValidRole(role) {
		return User{}, ErrInvalidRole
	}
	if _, err := uuid.Parse(userID); err != nil {
		return User{}, ErrUserNotFound
	}
	if callerID == userID && role != RoleAdmin {
		return User{}, ErrSelfDemotion
	}
	if err := s.Store.UpdateRole(ctx, userID, role); err != nil {
		return User{}, err
	}
	return s.Store.GetUser(ctx, userID)
}

// Authenticate resolves a bearer token to the caller. Role and employee
// association are reloaded from the store so changes apply without a new login.
func (s *Service) Authenticate(ctx context.Context, token string) (UserContext, error) {
	claims, err := ParseToken(s.Secret, token)
	if err != nil {
		return UserContext{}, ErrInvalidToken
	}
	user, err := s.Store.GetUser(ctx, claims.UserID)
	if errors.Is(err, ErrUserNotFound) {
		return UserContext{}, ErrInvalidToken
	}
	if err != nil {
		return UserContext{}, err
	}
	if !ValidRole(user.Role) {
		return UserContext{}, ErrInvalidRole
	}
	return UserContext{UserID: user.ID, Role: user.Role, EmployeeID: user.EmployeeID}, nil
}
