package service

import (
	"errors"
	"time"

	apperrors "employee-portal/pkg/errors"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionClaims - содержимое cookie сессии. ID (jti) совпадает с ключом сессии в кэше.
type SessionClaims struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type JWTService interface {
	GenerateToken(userID int64, username string) (token string, sessionID string, err error)
	ValidateToken(tokenString string) (*SessionClaims, error)
	GetSessionTTL() time.Duration
}

type jwtService struct {
	secretKey  string
	sessionTTL time.Duration
	logger     *zap.Logger
}

func NewJWTService(secretKey string, sessionTTL time.Duration, logger *zap.Logger) JWTService {
	return &jwtService{
		secretKey:  secretKey,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

func (s *jwtService) GetSessionTTL() time.Duration {
	return s.sessionTTL
}

func (s *jwtService) GenerateToken(userID int64, username string) (string, string, error) {
	now := time.Now()
	sessionID := uuid.New().String()

	claims := &SessionClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	tokenString, err := token.SignedString([]byte(s.secretKey))
	if err != nil {
		return "", "", err
	}
	return tokenString, sessionID, nil
}

func (s *jwtService) ValidateToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		switch token.Method.(type) {
		case *jwt.SigningMethodHMAC:
			return []byte(s.secretKey), nil
		default:
			return nil, apperrors.ErrInvalidSigningMethod
		}
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		s.logger.Debug("ошибка разбора токена сессии", zap.Error(err))
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}
