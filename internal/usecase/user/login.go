package user

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/BruksfildServices01/service-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/service-scheduler/internal/httperr"
	"github.com/BruksfildServices01/service-scheduler/internal/models"
)

// ErrInvalidCredentials covers both an unknown username and a wrong password.
var ErrInvalidCredentials = httperr.ErrBusiness("invalid_credentials")

type Login struct {
	repo   domain.Repository
	tokens *Tokens
}

func NewLogin(repo domain.Repository, tokens *Tokens) *Login {
	return &Login{repo: repo, tokens: tokens}
}

func (uc *Login) Execute(ctx context.Context, username, password string) (*models.User, string, error) {
	u, err := uc.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if httperr.IsNotFound(err) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := uc.tokens.Issue(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}
