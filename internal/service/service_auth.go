package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/expnse/expnse-server/internal/config"
	"github.com/expnse/expnse-server/internal/logger"
	"github.com/expnse/expnse-server/internal/store"
	"github.com/expnse/expnse-server/models"
)

// minPasswordLength is the only composition rule the password policy has,
// for registration and password change alike.
const minPasswordLength = 6

// authService is the concrete implementation of [AuthService].
// It handles user registration, credential verification, and password
// changes using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// bcryptCost is the work factor applied when hashing new passwords.
	// Verification reads the cost embedded in the stored hash, so changing
	// it never invalidates existing credentials.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given
// UserRepository and configured with the bcrypt work factor from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// Register creates a new user account and returns its identity, the same
// shape a login returns, so the client is authenticated immediately.
//
// It validates that username and password are non-empty and that the
// password meets the minimum length, hashes the password with bcrypt, and
// delegates persistence to the UserRepository.
//
// Returns:
//   - ErrInvalidDataProvided if username or password is empty.
//   - ErrPasswordTooShort if the password has fewer than 6 characters.
//   - A wrapped storage error if the repository call fails (e.g. username
//     already taken, see store.ErrUsernameTaken).
func (a *authService) Register(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	if len(password) < minPasswordLength {
		return models.User{}, ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		log.Err(err).Str("username", username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by username and verifies the password against
// the stored bcrypt hash via the algorithm's own comparison routine,
// never plain string equality.
//
// Unknown username and wrong password both return ErrInvalidCredentials;
// the caller cannot tell which occurred.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")

		if isNotFound(err) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		log.Warn().
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// ChangePassword verifies the current password for the given identity and
// overwrites the stored hash with the new password's hash.
//
// Returns:
//   - ErrInvalidDataProvided if any argument is missing.
//   - ErrInvalidCredentials if the user does not exist or the current
//     password does not match.
//   - ErrPasswordTooShort if the new password has fewer than 6 characters.
//   - ErrSamePassword if the new password equals the current one.
func (a *authService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	log := logger.FromContext(ctx)

	if userID <= 0 || currentPassword == "" || newPassword == "" {
		log.Error().Int64("user_id", userID).Msg("invalid password change data provided")
		return ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user search by id failed")

		if isNotFound(err) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("user search by id failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(currentPassword)); err != nil {
		log.Warn().Int64("user_id", userID).Msg("current password mismatch")
		return ErrInvalidCredentials
	}

	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	if newPassword == currentPassword {
		return ErrSamePassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), a.bcryptCost)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := a.userRepository.UpdatePassword(ctx, userID, string(hash)); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, store.ErrUserNotFound)
}
