package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nax3t/go-blog/internal/config"
	"github.com/nax3t/go-blog/internal/logger"
	"github.com/nax3t/go-blog/internal/store"
	"github.com/nax3t/go-blog/internal/utils"
	"github.com/nax3t/go-blog/models"
)

// userService is the concrete implementation of UserService. It performs
// profile self-management for an already authenticated account; all
// identity checks happened earlier, at the session boundary.
type userService struct {
	userRepository store.UserRepository
	bcryptCost     int
	logger         *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
func NewUserService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// UpdateUsername changes the account's public name.
//
// Historical posts and comments keep the username they were written under;
// only the account record itself is rewritten.
//
// Returns ErrValidationFailed, store.ErrUserNotFound, or
// store.ErrUsernameTaken.
func (u *userService) UpdateUsername(ctx context.Context, userID uuid.UUID, req models.UpdateUsernameRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateRequest(req); err != nil {
		log.Err(err).Str("user_id", userID.String()).Msg("invalid username update data provided")
		return models.User{}, err
	}

	updatedUser, err := u.userRepository.UpdateUsername(ctx, userID, req.Username)
	if err != nil {
		log.Err(err).Str("user_id", userID.String()).Msg("username update ended with error")
		return models.User{}, fmt.Errorf("username update ended with error: %w", err)
	}

	return updatedUser, nil
}

// UpdatePassword replaces the account password.
//
// The current password must verify against the stored hash before the new
// one is accepted; a failed check yields ErrInvalidCredentials so the
// response does not reveal anything beyond "the current password was wrong".
func (u *userService) UpdatePassword(ctx context.Context, userID uuid.UUID, req models.UpdatePasswordRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateRequest(req); err != nil {
		log.Err(err).Str("user_id", userID.String()).Msg("invalid password update data provided")
		return models.User{}, err
	}

	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID.String()).Msg("user lookup for password update failed")
		return models.User{}, fmt.Errorf("user lookup for password update failed: %w", err)
	}

	ok, err := utils.VerifyPassword(req.CurrentPassword, user.PasswordHash)
	if err != nil {
		log.Err(err).Str("user_id", userID.String()).Msg("stored password hash is unusable")
		return models.User{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		log.Debug().Str("user_id", userID.String()).Msg("current password did not verify")
		return models.User{}, ErrInvalidCredentials
	}

	newHash, err := utils.HashPassword(req.NewPassword, u.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	updatedUser, err := u.userRepository.UpdatePasswordHash(ctx, userID, newHash)
	if err != nil {
		log.Err(err).Str("user_id", userID.String()).Msg("password update ended with error")
		return models.User{}, fmt.Errorf("password update ended with error: %w", err)
	}

	return updatedUser, nil
}

// DeleteAccount removes the account. The schema-level cascades take every
// post the user authored, every comment on those posts, and every comment
// the user left anywhere else, all in the one DELETE statement.
func (u *userService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	log := logger.FromContext(ctx)

	if err := u.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Str("user_id", userID.String()).Msg("account deletion ended with error")
		return fmt.Errorf("account deletion ended with error: %w", err)
	}

	log.Info().Str("user_id", userID.String()).Msg("account deleted")
	return nil
}
