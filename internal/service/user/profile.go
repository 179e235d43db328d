package user

import (
	"context"
	"fmt"

	"github.com/heartmarshall/recruitment-backend/internal/domain"
)

// GetProfile returns the caller's account.
func (s *Service) GetProfile(ctx context.Context, actor domain.Actor) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}
	return u, nil
}
