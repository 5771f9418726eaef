package users

import (
	"context"

	"github.com/dmitrijs2005/geoportal/internal/server/models"
)

type Repository interface {
	GetUserByLogin(ctx context.Context, userName string) (*models.User, error)
}
