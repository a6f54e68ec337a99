package user

import (
	"context"

	"github.com/BruksfildServices01/service-scheduler/internal/models"
)

const DefaultRole = "user"

type Repository interface {
	Create(ctx context.Context, u *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
}
