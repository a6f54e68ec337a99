package user

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/BruksfildServices01/service-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/service-scheduler/internal/httperr"
	"github.com/BruksfildServices01/service-scheduler/internal/models"
	"github.com/BruksfildServices01/service-scheduler/internal/schema"
	"github.com/BruksfildServices01/service-scheduler/internal/validators"
)

const minPassword = 6

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type Register struct {
	repo     domain.Repository
	registry *schema.Registry
}

func NewRegister(repo domain.Repository, registry *schema.Registry) *Register {
	return &Register{repo: repo, registry: registry}
}

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if !validators.LengthBetween(username, 3, 50) {
		return nil, httperr.ErrValidation("username", "invalid_length")
	}
	if !validators.IsEmail(email) {
		return nil, httperr.ErrValidation("email", "invalid_email")
	}
	if len(in.Password) < minPassword {
		return nil, httperr.ErrValidation("password", "too_short")
	}

	err := uc.registry.Validate(schema.EntityUser, map[string]*string{
		"username": &username,
		"email":    &email,
	}, true)
	var fe *schema.FieldError
	if errors.As(err, &fe) {
		return nil, httperr.ErrValidation(fe.Column, fe.Code)
	}
	if err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         domain.DefaultRole,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
