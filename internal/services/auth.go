package services

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/wowbook/clarity-backend/internal/platform/logger"
	"github.com/wowbook/clarity-backend/internal/requestdata"
)

type AuthService interface {
	// CreateSession mints an anonymous identity. No account, no PII.
	CreateSession(ctx context.Context) (token string, userID uuid.UUID, err error)
	AdminLogin(ctx context.Context, password string) (string, error)
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
}

type authService struct {
	log        *logger.Logger
	secret     []byte
	sessionTTL time.Duration
	adminTTL   time.Duration
	adminHash  []byte
}

func NewAuthService(log *logger.Logger) (AuthService, error) {
	serviceLog := log.With("service", "AuthService")

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		return nil, fmt.Errorf("missing JWT_SECRET")
	}

	sessionTTL := 72 * time.Hour
	if v := strings.TrimSpace(os.Getenv("SESSION_TTL_HOURS")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			sessionTTL = time.Duration(parsed) * time.Hour
		}
	}

	// ADMIN_PASSWORD_HASH is the production path. Hashing a plaintext
	// ADMIN_PASSWORD here is a local-dev convenience; the salt is fresh
	// on every boot, so the derived hash is not stable across restarts.
	var adminHash []byte
	if h := strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH")); h != "" {
		adminHash = []byte(h)
	} else if plain := strings.TrimSpace(os.Getenv("ADMIN_PASSWORD")); plain != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("Failed to hash admin password: %w", err)
		}
		adminHash = hashed
	} else {
		serviceLog.Warn("No admin password configured, admin login disabled")
	}

	return &authService{
		log:        serviceLog,
		secret:     []byte(secret),
		sessionTTL: sessionTTL,
		adminTTL:   12 * time.Hour,
		adminHash:  adminHash,
	}, nil
}

func (as *authService) CreateSession(ctx context.Context) (string, uuid.UUID, error) {
	userID := uuid.New()
	token, err := as.sign(userID, false, as.sessionTTL)
	if err != nil {
		return "", uuid.Nil, err
	}
	as.log.Info("Anonymous session created", "user_id", userID.String())
	return token, userID, nil
}

func (as *authService) AdminLogin(ctx context.Context, password string) (string, error) {
	if len(as.adminHash) == 0 {
		return "", fmt.Errorf("admin login is not configured")
	}
	if err := bcrypt.CompareHashAndPassword(as.adminHash, []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}
	token, err := as.sign(uuid.New(), true, as.adminTTL)
	if err != nil {
		return "", err
	}
	as.log.Info("Admin login succeeded")
	return token, nil
}

func (as *authService) sign(userID uuid.UUID, isAdmin bool, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"adm": isAdmin,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(as.secret)
	if err != nil {
		return "", fmt.Errorf("Failed to sign token: %w", err)
	}
	return signed, nil
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return as.secret, nil
	})
	if err != nil || !parsed.Valid {
		return ctx, fmt.Errorf("invalid token")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return ctx, fmt.Errorf("invalid token claims")
	}
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return ctx, fmt.Errorf("invalid token subject")
	}
	isAdmin, _ := claims["adm"].(bool)

	rd := &requestdata.RequestData{
		TokenString: tokenString,
		UserID:      userID,
		IsAdmin:     isAdmin,
	}
	return requestdata.WithRequestData(ctx, rd), nil
}
