package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/lumina-lms/lumina-api/internal/models"
	"github.com/lumina-lms/lumina-api/internal/repository"
)

// ErrUserNotFound indicates the requesting identity no longer resolves to a
// user record.
var ErrUserNotFound = errors.New("user not found")

// errUnknownRole marks a stored role outside the closed enum. It maps to a
// generic 500 because it can only arise from corrupted data.
var errUnknownRole = errors.New("unknown role")

// resolveRequester loads the authenticated user's record. Role and ownership
// decisions are always made against the stored row, never against token
// claims, so a stale token cannot carry a revoked role.
func resolveRequester(ctx context.Context, users repository.UserRepository, id uint) (models.User, error) {
	user, err := users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}

	return user, nil
}
