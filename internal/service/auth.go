package service

import (
	"context"
	"errors"

	"showroom-backend/internal/domain"
	"showroom-backend/internal/repository"
	"showroom-backend/internal/security"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type RegisterCustomerInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Address     domain.Address
	Username    string
	Password    string
}

type RegisterEmployeeInput struct {
	RegisterCustomerInput
	Position domain.EmployeePosition
}

type LoginResult struct {
	Token    string
	UserID   int64
	Username string
	Email    string
	Roles    []string
}

type authService struct {
	store  repository.Store
	tokens security.TokenManager
}

func NewAuthService(store repository.Store, tokens security.TokenManager) AuthService {
	return &authService{store: store, tokens: tokens}
}

func (s *authService) RegisterCustomer(ctx context.Context, in RegisterCustomerInput) (*domain.Customer, error) {
	if err := s.checkCustomerUniqueness(ctx, in.Username, in.Email); err != nil {
		return nil, err
	}

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	c := &domain.Customer{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PhoneNumber:  in.PhoneNumber,
		Address:      in.Address,
		Username:     in.Username,
		PasswordHash: hash,
		Roles:        []string{domain.RoleCustomer},
		Active:       true,
	}
	if err := s.store.Customers().Create(ctx, c); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflict("username or email is already taken")
		}
		return nil, err
	}
	return c, nil
}

func (s *authService) RegisterEmployee(ctx context.Context, in RegisterEmployeeInput) (*domain.Employee, error) {
	exists, err := s.store.Employees().ExistsByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, conflict("username %s is already taken", in.Username)
	}
	exists, err = s.store.Employees().ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, conflict("email %s is already in use", in.Email)
	}

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	// Every employee carries ROLE_EMPLOYEE; managers get ROLE_MANAGER on top.
	roles := []string{domain.RoleEmployee}
	if in.Position == domain.PositionManager {
		roles = append(roles, domain.RoleManager)
	}

	e := &domain.Employee{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PhoneNumber:  in.PhoneNumber,
		Address:      in.Address,
		Username:     in.Username,
		PasswordHash: hash,
		Roles:        roles,
		Position:     in.Position,
		Active:       true,
	}
	if err := s.store.Employees().Create(ctx, e); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflict("username or email is already taken")
		}
		return nil, err
	}
	return e, nil
}

// Login authenticates against customer accounts first, then employee
// accounts; the two tables are independent but usernames are globally
// unique across both by registration checks.
func (s *authService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if c, err := s.store.Customers().GetByUsername(ctx, username); err == nil {
		if !c.Active || !security.CheckPassword(c.PasswordHash, password) {
			return nil, ErrInvalidCredentials
		}
		return s.issueToken(c.ID, c.Username, c.Email, c.Roles)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	e, err := s.store.Employees().GetByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !e.Active || !security.CheckPassword(e.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return s.issueToken(e.ID, e.Username, e.Email, e.Roles)
}

func (s *authService) issueToken(id int64, username, email string, roles []string) (*LoginResult, error) {
	token, err := s.tokens.GenerateAccessToken(id, username, roles)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, UserID: id, Username: username, Email: email, Roles: roles}, nil
}

func (s *authService) checkCustomerUniqueness(ctx context.Context, username, email string) error {
	exists, err := s.store.Customers().ExistsByUsername(ctx, username)
	if err != nil {
		return err
	}
	if exists {
		return conflict("username %s is already taken", username)
	}
	exists, err = s.store.Customers().ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return conflict("email %s is already in use", email)
	}
	return nil
}
