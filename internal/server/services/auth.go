package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/geoportal/internal/common"
	"github.com/dmitrijs2005/geoportal/internal/server/auth"
	"github.com/dmitrijs2005/geoportal/internal/server/models"
	"github.com/dmitrijs2005/geoportal/internal/server/repositories/repomanager"
)

// AuthService verifies credentials against the credential database.
type AuthService struct {
	store       Connector
	repomanager repomanager.RepositoryManager
	decoy       *auth.Decoy
}

// NewAuthService builds the service. decoyCost should equal the bcrypt cost
// of the stored hashes so unknown users take as long as wrong passwords.
func NewAuthService(store Connector, m repomanager.RepositoryManager, decoyCost int) *AuthService {
	return &AuthService{store: store, repomanager: m, decoy: auth.NewDecoy(decoyCost)}
}

// Login returns the user when password matches the stored bcrypt hash.
//
// Empty input yields common.ErrorValidation. Unknown users and wrong
// passwords both yield common.ErrorUnauthorized. Store failures are wrapped
// in common.ErrorInternal.
func (s *AuthService) Login(ctx context.Context, userName, password string) (*models.User, error) {
	if userName == "" || password == "" {
		return nil, common.ErrorValidation
	}

	user, err := s.findUser(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.decoy.Compare(password)
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, common.ErrorUnauthorized
	}
	return user, nil
}

// findUser holds a connection only for the duration of the lookup.
func (s *AuthService) findUser(ctx context.Context, userName string) (*models.User, error) {
	conn, release, err := s.store.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	return s.repomanager.Users(conn).GetUserByLogin(ctx, userName)
}
