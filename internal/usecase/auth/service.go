package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fintrack/internal/domain/entity"
	"fintrack/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// timingPadHash is a valid bcrypt hash compared against when the
// username does not exist, so the unknown-user path costs the same as a
// failed password check. The plaintext behind it is never accepted
// because the comparison result is discarded on that path.
const timingPadHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Service provides registration and login use cases.
type Service struct {
	Users repository.UserRepository

	// Secret signs issued tokens (HS256).
	Secret []byte
	// TokenTTL bounds token lifetime. Zero falls back to one hour.
	TokenTTL time.Duration
	// WeakPasswords is the configured deny-list, matched
	// case-insensitively at registration.
	WeakPasswords []string

	// now is injectable for tests.
	now func() time.Time
}

// RegisterInput represents the input parameters for creating an account.
// All fields have been validated at the request boundary; Password is
// the raw credential.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register creates a new account and returns its ID.
// Returns ErrUsernameTaken or ErrWeakPassword on policy violations.
func (s *Service) Register(ctx context.Context, in RegisterInput) (int64, error) {
	for _, weak := range s.WeakPasswords {
		if strings.EqualFold(in.Password, weak) {
			return 0, ErrWeakPassword
		}
	}

	existing, err := s.Users.GetByUsername(ctx, in.Username)
	if err != nil {
		return 0, fmt.Errorf("check username: %w", err)
	}
	if existing != nil {
		return 0, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.Users.Create(ctx, &entity.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	return id, nil
}

// Login verifies the credentials and returns a signed JWT.
// Returns ErrInvalidCredentials when the pair does not match.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		// 未知ユーザーでも同じコストでハッシュ比較する
		_ = bcrypt.CompareHashAndPassword([]byte(timingPadHash), []byte(password))
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.issueToken(user)
}

func (s *Service) issueToken(user *entity.User) (string, error) {
	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	nowFn := s.now
	if nowFn == nil {
		nowFn = time.Now
	}
	issuedAt := nowFn()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.Username,
		"uid": user.ID,
		"iat": issuedAt.Unix(),
		"exp": issuedAt.Add(ttl).Unix(),
	})

	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
