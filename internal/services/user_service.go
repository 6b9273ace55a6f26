package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sharktalent/backend/internal/api/validate"
	"github.com/sharktalent/backend/internal/auth"
	"github.com/sharktalent/backend/internal/models"
	repo "github.com/sharktalent/backend/internal/repository"
)

type UserService struct {
	users repo.Users
	audit *Auditor
}

func NewUserService(users repo.Users, audit *Auditor) *UserService {
	return &UserService{users: users, audit: audit}
}

type RegisterInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (models.User, error) {
	var errs validate.Errs
	errs.Require("email", in.Email)
	errs.Require("password", in.Password)
	errs.Require("first_name", in.FirstName)
	errs.Require("last_name", in.LastName)
	errs.Require("role", in.Role)
	if err := errs.Err(); err != nil {
		return models.User{}, invalid(err.Error())
	}
	if !models.ValidRole(in.Role) {
		return models.User{}, invalid("Role must be client, freelancer, or admin")
	}

	if _, err := s.users.GetByEmail(ctx, in.Email); err == nil {
		return models.User{}, invalid("User already exists with this email")
	} else if !errors.Is(err, repo.ErrNotFound) {
		return models.User{}, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, err
	}

	u, err := s.users.Create(ctx, models.User{
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         models.Role(in.Role),
	})
	if err != nil {
		return models.User{}, err
	}

	s.audit.record(u.ID, "user", u.ID, "user.registered", map[string]any{"role": u.Role})
	return u, nil
}

// Authenticate verifies email/password credentials. The failure message
// never reveals whether the email exists.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	if email == "" || password == "" {
		return models.User{}, invalid("Email and password are required")
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return models.User{}, unauthorized("Invalid email or password")
		}
		return models.User{}, err
	}
	if auth.VerifyPassword(password, u.PasswordHash) != nil {
		return models.User{}, unauthorized("Invalid email or password")
	}
	return u, nil
}

func (s *UserService) Get(ctx context.Context, id string) (models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return models.User{}, notFound("User not found")
		}
		return models.User{}, err
	}
	return u, nil
}

type ProfileUpdate struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
}

func (s *UserService) UpdateProfile(ctx context.Context, callerID string, in ProfileUpdate) (models.User, error) {
	u, err := s.Get(ctx, callerID)
	if err != nil {
		return models.User{}, err
	}

	if in.FirstName != nil {
		if strings.TrimSpace(*in.FirstName) == "" {
			return models.User{}, invalid("first_name must not be empty")
		}
		u.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		if strings.TrimSpace(*in.LastName) == "" {
			return models.User{}, invalid("last_name must not be empty")
		}
		u.LastName = *in.LastName
	}
	if in.Email != nil {
		if !strings.Contains(*in.Email, "@") {
			return models.User{}, invalid("invalid email")
		}
		existing, err := s.users.GetByEmail(ctx, *in.Email)
		if err == nil && existing.ID != u.ID {
			return models.User{}, invalid("Email already taken")
		} else if err != nil && !errors.Is(err, repo.ErrNotFound) {
			return models.User{}, err
		}
		u.Email = *in.Email
	}

	if err := s.users.Update(ctx, u); err != nil {
		return models.User{}, err
	}
	s.audit.record(callerID, "user", u.ID, "user.profile_updated", nil)
	return s.Get(ctx, callerID)
}

func (s *UserService) ChangePassword(ctx context.Context, callerID, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return invalid("Current password and new password are required")
	}

	u, err := s.Get(ctx, callerID)
	if err != nil {
		return err
	}
	if auth.VerifyPassword(currentPassword, u.PasswordHash) != nil {
		return invalid("Current password is incorrect")
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, callerID, hash); err != nil {
		return err
	}
	s.audit.record(callerID, "user", callerID, "user.password_changed", nil)
	return nil
}
