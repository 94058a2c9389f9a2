package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mvickers/diarisk-backend/internal/logger"
	"github.com/mvickers/diarisk-backend/internal/repos"
	"github.com/mvickers/diarisk-backend/internal/requestdata"
	"github.com/mvickers/diarisk-backend/internal/types"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*types.User, string, error)
	Login(ctx context.Context, email, password string) (*types.User, string, error)
	Logout(ctx context.Context) error
	ResolveSession(ctx context.Context, cookieValue string) (context.Context, error)
	SessionTTL() time.Duration
}

type authService struct {
	db          *gorm.DB
	log         *logger.Logger
	userRepo    repos.UserRepo
	sessionRepo repos.SessionRepo
	secretKey   string
	sessionTTL  time.Duration
}

func NewAuthService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	sessionRepo repos.SessionRepo,
	secretKey string,
	sessionTTL time.Duration,
) AuthService {
	serviceLog := log.With("service", "AuthService")
	return &authService{
		db:          db,
		log:         serviceLog,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		secretKey:   secretKey,
		sessionTTL:  sessionTTL,
	}
}

// Register creates the user and logs them in, returning the signed session
// cookie value. A duplicate email yields ErrEmailTaken and no new row.
func (as *authService) Register(ctx context.Context, name, email, password string) (*types.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, "", fmt.Errorf("name, email and password are required")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &types.User{
		ID:       uuid.New(),
		Email:    email,
		Password: string(hashed),
		Name:     name,
	}

	var cookieValue string
	err = as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, eErr := as.userRepo.EmailExists(ctx, tx, email)
		if eErr != nil {
			return fmt.Errorf("check email: %w", eErr)
		}
		if exists {
			return ErrEmailTaken
		}
		if cErr := as.userRepo.Create(ctx, tx, user); cErr != nil {
			return fmt.Errorf("create user: %w", cErr)
		}
		signed, sErr := as.issueSession(ctx, tx, user)
		if sErr != nil {
			return sErr
		}
		cookieValue = signed
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	as.log.Info("User registered", "user_id", user.ID)
	return user, cookieValue, nil
}

// Login verifies the stored hash against the supplied password for that
// exact email. Any other combination fails with ErrInvalidCredentials.
func (as *authService) Login(ctx context.Context, email, password string) (*types.User, string, error) {
	email = strings.TrimSpace(email)

	user, err := as.userRepo.GetByEmail(ctx, nil, email)
	if err != nil {
		return nil, "", fmt.Errorf("look up user: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	var cookieValue string
	err = as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Expired rows are otherwise only reaped one-at-a-time when
		// presented; login is the natural point to sweep the backlog.
		swept, dErr := as.sessionRepo.DeleteExpired(ctx, tx, time.Now())
		if dErr != nil {
			return fmt.Errorf("sweep expired sessions: %w", dErr)
		}
		if swept > 0 {
			as.log.Debug("Swept expired sessions", "count", swept)
		}
		signed, sErr := as.issueSession(ctx, tx, user)
		if sErr != nil {
			return sErr
		}
		cookieValue = signed
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	as.log.Info("User logged in", "user_id", user.ID)
	return user, cookieValue, nil
}

// Logout destroys the session behind the current request. The identity
// comes from the request-scoped data set by ResolveSession.
func (as *authService) Logout(ctx context.Context) error {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.SessionToken == "" {
		return ErrSessionInvalid
	}
	if err := as.sessionRepo.DeleteByToken(ctx, nil, rd.SessionToken); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	as.log.Info("User logged out", "user_id", rd.UserID)
	return nil
}

// ResolveSession turns a signed cookie value back into a request-scoped
// identity. Expired sessions and sessions whose user no longer exists are
// cleaned up and reported as invalid, never as a server error.
func (as *authService) ResolveSession(ctx context.Context, cookieValue string) (context.Context, error) {
	if cookieValue == "" {
		return ctx, ErrSessionInvalid
	}

	token, err := as.verifyCookie(cookieValue)
	if err != nil {
		return ctx, ErrSessionInvalid
	}

	session, err := as.sessionRepo.GetByToken(ctx, nil, token)
	if err != nil {
		return ctx, fmt.Errorf("look up session: %w", err)
	}
	if session == nil {
		return ctx, ErrSessionInvalid
	}
	if session.ExpiresAt.Before(time.Now()) {
		if dErr := as.sessionRepo.DeleteByToken(ctx, nil, token); dErr != nil {
			as.log.Warn("Failed to delete expired session", "error", dErr)
		}
		return ctx, ErrSessionInvalid
	}

	user, err := as.userRepo.GetByID(ctx, nil, session.UserID)
	if err != nil {
		return ctx, fmt.Errorf("look up session user: %w", err)
	}
	if user == nil {
		// Orphaned session; invalidate it and force re-authentication.
		if dErr := as.sessionRepo.DeleteByToken(ctx, nil, token); dErr != nil {
			as.log.Warn("Failed to delete orphaned session", "error", dErr)
		}
		return ctx, ErrSessionInvalid
	}

	rd := &requestdata.RequestData{
		SessionToken: token,
		UserID:       user.ID,
		User:         user,
	}
	return requestdata.WithRequestData(ctx, rd), nil
}

func (as *authService) SessionTTL() time.Duration {
	return as.sessionTTL
}

// issueSession stores an opaque token and wraps it in a signed JWT for the
// cookie, so a tampered cookie fails signature verification before any
// database work happens.
func (as *authService) issueSession(ctx context.Context, tx *gorm.DB, user *types.User) (string, error) {
	token := uuid.New().String()
	expiresAt := time.Now().Add(as.sessionTTL)
	session := &types.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: expiresAt,
	}
	if err := as.sessionRepo.Create(ctx, tx, session); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}

	claims := jwt.RegisteredClaims{
		Subject:   token,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(as.secretKey))
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

func (as *authService) verifyCookie(cookieValue string) (string, error) {
	parsed, err := jwt.ParseWithClaims(cookieValue, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(as.secretKey), nil
	})
	if err != nil {
		return "", fmt.Errorf("parse session cookie: %w", err)
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return "", fmt.Errorf("invalid session cookie")
	}
	return claims.Subject, nil
}
