package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nax3t/go-blog/internal/config"
	"github.com/nax3t/go-blog/internal/logger"
	"github.com/nax3t/go-blog/internal/store"
	"github.com/nax3t/go-blog/internal/utils"
	"github.com/nax3t/go-blog/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification, and the session-token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the credential store used to create and look up accounts.
	userRepository store.UserRepository

	// sessionSignKey is the HMAC secret used to sign and verify session tokens.
	sessionSignKey string

	// sessionIssuer is the "iss" claim embedded in every issued session token.
	// Tokens whose issuer does not match are rejected during authentication.
	sessionIssuer string

	// sessionTTL controls how long a newly minted session remains valid.
	sessionTTL time.Duration

	// bcryptCost is the cost factor applied when hashing passwords.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		sessionSignKey: cfg.SessionSignKey,
		sessionIssuer:  cfg.SessionIssuer,
		sessionTTL:     cfg.SessionTTL,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// Register creates a new account.
//
// It validates the payload bounds (username ≥ 3 chars, password ≥ 6 chars),
// hashes the password with the configured bcrypt cost, and delegates
// persistence to the UserRepository.
//
// Returns the persisted user or:
//   - ErrValidationFailed if a field bound is violated.
//   - store.ErrUsernameTaken if the username is already registered.
//   - A wrapped storage error for any other repository failure.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateRequest(req); err != nil {
		log.Err(err).Str("username", req.Username).Msg("invalid registration data provided")
		return models.User{}, err
	}

	passwordHash, err := utils.HashPassword(req.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	now := time.Now().UTC()
	user := models.User{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing account.
//
// A missing account and a wrong password both produce ErrInvalidCredentials
// so the caller cannot tell which one happened. A malformed stored hash is
// an infrastructure failure, not a mismatch, and is surfaced as such.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateRequest(req); err != nil {
		log.Err(err).Msg("invalid login data provided")
		return models.User{}, err
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Str("username", req.Username).Msg("login attempt for unknown username")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", req.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	ok, err := utils.VerifyPassword(req.Password, foundUser.PasswordHash)
	if err != nil {
		log.Err(err).Str("user_id", foundUser.ID.String()).Msg("stored password hash is unusable")
		return models.User{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		log.Debug().Str("user_id", foundUser.ID.String()).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateSession mints a signed session token for the given user.
//
// The token is signed with the configured sign key, carries the configured
// issuer as the "iss" claim, and expires after the session TTL. This is the
// only place in the application where a session comes into existence.
func (a *authService) CreateSession(ctx context.Context, user models.User) (models.Session, error) {
	session, err := utils.GenerateSessionToken(a.sessionIssuer, user.ID, a.sessionTTL, a.sessionSignKey)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	return session, nil
}

// Authenticate resolves a raw session-cookie value to the account it
// belongs to.
//
// The token signature, issuer, and expiry are verified first; the subject
// is then parsed as a UUID and re-checked against the credential store, so
// a session for a deleted account stops working immediately. Every failure
// mode is normalised to ErrUnauthenticated, so callers never need to
// inspect low-level token errors. Infrastructure failures during the store lookup
// are kept distinct so they surface as 500s, not 401s.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	session, err := utils.ValidateAndParseSessionToken(tokenString, a.sessionSignKey, a.sessionIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("session token rejected")
		return models.User{}, ErrUnauthenticated
	}

	user, err := a.userRepository.FindUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Str("user_id", session.UserID.String()).Msg("session refers to a missing account")
			return models.User{}, ErrUnauthenticated
		}
		log.Err(err).Str("user_id", session.UserID.String()).Msg("user lookup during authentication failed")
		return models.User{}, fmt.Errorf("user lookup during authentication failed: %w", err)
	}

	return user, nil
}
