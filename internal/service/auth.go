package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/pizza-nz/backoffice-service/internal/db/repository"
	"github.com/pizza-nz/backoffice-service/internal/logging"
	"github.com/pizza-nz/backoffice-service/internal/models"
	"github.com/pizza-nz/backoffice-service/internal/session"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig holds configuration for session token generation
type JWTConfig struct {
	Secret    string
	ExpiresIn int // hours
}

func (c JWTConfig) lifetime() time.Duration {
	return time.Duration(c.ExpiresIn) * time.Hour
}

// SessionFeed closes the live connections opened under a session
type SessionFeed interface {
	Disconnect(sessionID string)
}

// AuthService handles accounts, authentication and sessions
type AuthService struct {
	users     UserStore
	sessions  *session.Store
	feed      SessionFeed
	jwtConfig JWTConfig
	hashCost  int
	now       func() time.Time
}

// NewAuthService creates a new authentication service. feed may be nil.
func NewAuthService(users UserStore, sessions *session.Store, feed SessionFeed, jwtConfig JWTConfig) *AuthService {
	return &AuthService{
		users:     users,
		sessions:  sessions,
		feed:      feed,
		jwtConfig: jwtConfig,
		hashCost:  bcrypt.DefaultCost,
		now:       time.Now,
	}
}

// Claims represents session token claims
type Claims struct {
	SessionID string `json:"sid"`
	Username  string `json:"username"`
	jwt.RegisteredClaims
}

// Register creates an account. Only the salted bcrypt hash is stored.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	if req.Password != req.ConfirmPassword {
		return nil, invalid("confirm_password", "passwords do not match")
	}

	_, err := s.users.GetByUsername(ctx, req.Username)
	switch {
	case err == nil:
		return nil, ErrDuplicateUsername
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, invalid("password", "password must be at most 72 bytes")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.Create(ctx, models.User{
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
	})
	if errors.Is(err, repository.ErrDuplicateKey) {
		return nil, ErrDuplicateUsername
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logging.With("auth").Info().Str("username", user.Username).Msg("account registered")
	return user, nil
}

// Authenticate reports whether password matches the stored hash for
// username. An unknown username is not an error.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (bool, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get user: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	return err == nil, nil
}

// Login authenticates and opens a session, returning its bearer token
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *session.Session, error) {
	ok, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", nil, err
	}
	if !ok {
		logging.With("auth").Warn().Str("username", username).Msg("login rejected")
		return "", nil, ErrInvalidCredentials
	}

	now := s.now()
	sess := session.New()
	if err := sess.LogIn(username, now); err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(sess)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if pruned := s.sessions.Prune(now.Add(-s.jwtConfig.lifetime())); len(pruned) > 0 {
		logging.With("auth").Debug().Int("pruned", len(pruned)).Msg("dropped sessions with expired tokens")
		s.closeFeeds(pruned...)
	}
	s.sessions.Save(*sess)

	logging.With("auth").Info().Str("username", username).Str("session_id", sess.ID.String()).Msg("logged in")
	return token, sess, nil
}

// Logout ends a session; its token stops resolving
func (s *AuthService) Logout(sess *session.Session) error {
	if err := sess.LogOut(); err != nil {
		return err
	}
	s.sessions.Delete(sess.ID)
	s.closeFeeds(sess.ID)
	logging.With("auth").Info().Str("session_id", sess.ID.String()).Msg("logged out")
	return nil
}

// closeFeeds disconnects the change feed of ended sessions.
func (s *AuthService) closeFeeds(ids ...uuid.UUID) {
	if s.feed == nil {
		return
	}
	for _, id := range ids {
		s.feed.Disconnect(id.String())
	}
}

// ListUsers returns every account
func (s *AuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// DeleteUser removes an account and ends every session it holds
func (s *AuthService) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	ended := s.sessions.DeleteUser(user.Username)
	s.closeFeeds(ended...)
	logging.With("auth").Info().Str("username", user.Username).Int("sessions_ended", len(ended)).Msg("account deleted")
	return nil
}

// generateToken generates a session token
func (s *AuthService) generateToken(sess *session.Session) (string, error) {
	now := s.now()

	claims := &Claims{
		SessionID: sess.ID.String(),
		Username:  sess.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sess.ID.String(),
			Subject:   sess.Username,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtConfig.lifetime())),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtConfig.Secret))
}

// ValidateToken validates a session token and returns the claims
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtConfig.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// Resolve returns the live session a token refers to
func (s *AuthService) Resolve(tokenString string) (*session.Session, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("invalid session ID in token: %w", err)
	}

	sess, ok := s.sessions.Get(id)
	if !ok || !sess.LoggedIn() || sess.Username != claims.Username {
		return nil, errors.New("session has ended")
	}

	return &sess, nil
}

// ChangePassword changes the password of a logged-in user
func (s *AuthService) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error {
	if newPassword == "" {
		return invalid("new_password", "new_password is required")
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	// Verify current password
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword))
	if err != nil {
		return ErrInvalidCredentials
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.hashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return invalid("new_password", "new_password must be at most 72 bytes")
	}
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = string(hashedPassword)
	if err := s.users.Update(ctx, *user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
