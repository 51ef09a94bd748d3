// Файл: internal/services/auth.go
package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"employee-portal/internal/dto"
	"employee-portal/internal/entities"
	"employee-portal/internal/repositories"
	"employee-portal/pkg/config"
	apperrors "employee-portal/pkg/errors"
	"employee-portal/pkg/service"
	"employee-portal/pkg/utils"

	"go.uber.org/zap"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*entities.AppUser, error)
	StartSession(ctx context.Context, user *entities.AppUser) (string, error)
	ResolveSession(ctx context.Context, token string) (*dto.Identity, error)
	EndSession(ctx context.Context, token string) error
	SessionTTLSeconds() int
}

type AuthService struct {
	userRepo  repositories.UserRepositoryInterface
	cacheRepo repositories.CacheRepositoryInterface
	jwtSvc    service.JWTService
	logger    *zap.Logger
	cfg       *config.AuthConfig
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	jwtSvc service.JWTService,
	logger *zap.Logger,
	cfg *config.AuthConfig,
) AuthServiceInterface {
	return &AuthService{
		userRepo:  userRepo,
		cacheRepo: cacheRepo,
		jwtSvc:    jwtSvc,
		logger:    logger,
		cfg:       cfg,
	}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

// Login не различает "нет такого пользователя" и "неверный пароль".
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*entities.AppUser, error) {
	logger := s.logger.With(zap.String("username", payload.Username))

	if err := s.checkLockout(ctx, payload.Username); err != nil {
		logger.Warn("Login: учётная запись временно заблокирована")
		return nil, err
	}

	user, err := s.userRepo.FindUserByUsername(ctx, payload.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.handleFailedLoginAttempt(ctx, payload.Username)
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := utils.ComparePasswords(user.PasswordHash, payload.Password); err != nil {
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			logger.Warn("Login: некорректный хеш пароля", zap.Int64("userID", user.ID), zap.Error(err))
		}
		s.handleFailedLoginAttempt(ctx, payload.Username)
		return nil, apperrors.ErrInvalidCredentials
	}

	s.resetLoginAttempts(ctx, payload.Username)
	logger.Info("Login: успешный вход", zap.Int64("userID", user.ID))
	return user, nil
}

func (s *AuthService) StartSession(ctx context.Context, user *entities.AppUser) (string, error) {
	token, sessionID, err := s.jwtSvc.GenerateToken(user.ID, user.Username)
	if err != nil {
		return "", fmt.Errorf("не удалось подписать токен сессии: %w", err)
	}
	if err := s.cacheRepo.Set(ctx, sessionKey(sessionID), user.ID, s.jwtSvc.GetSessionTTL()); err != nil {
		return "", fmt.Errorf("не удалось сохранить сессию: %w", err)
	}
	return token, nil
}

// ResolveSession - проверка is_authenticated: токен валиден и сессия не удалена на сервере.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (*dto.Identity, error) {
	claims, err := s.jwtSvc.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	stored, err := s.cacheRepo.Get(ctx, sessionKey(claims.ID))
	if err != nil {
		if errors.Is(err, repositories.ErrCacheMiss) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("не удалось прочитать сессию: %w", err)
	}
	if stored != strconv.FormatInt(claims.UserID, 10) {
		s.logger.Warn("ResolveSession: пользователь сессии не совпадает с токеном", zap.String("sessionID", claims.ID))
		return nil, apperrors.ErrSessionNotFound
	}

	return &dto.Identity{UserID: claims.UserID, Username: claims.Username}, nil
}

// EndSession удаляет серверную сессию. Невалидный токен - не ошибка: выходить уже не из чего.
func (s *AuthService) EndSession(ctx context.Context, token string) error {
	claims, err := s.jwtSvc.ValidateToken(token)
	if err != nil {
		return nil
	}
	return s.cacheRepo.Del(ctx, sessionKey(claims.ID))
}

func (s *AuthService) SessionTTLSeconds() int {
	return int(s.jwtSvc.GetSessionTTL().Seconds())
}

func (s *AuthService) checkLockout(ctx context.Context, username string) error {
	lockoutKey := fmt.Sprintf("lockout:%s", username)
	if _, err := s.cacheRepo.Get(ctx, lockoutKey); err == nil {
		return apperrors.NewHttpError(http.StatusTooManyRequests, apperrors.ErrAccountLocked.Error(), apperrors.ErrAccountLocked, nil)
	}
	return nil
}

func (s *AuthService) handleFailedLoginAttempt(ctx context.Context, username string) {
	attemptsKey := fmt.Sprintf("login_attempts:%s", username)
	attempts, err := s.cacheRepo.Incr(ctx, attemptsKey)
	if err != nil {
		s.logger.Warn("не удалось увеличить счётчик попыток входа", zap.Error(err))
		return
	}
	if attempts == 1 {
		_, _ = s.cacheRepo.Expire(ctx, attemptsKey, s.cfg.LockoutDuration)
	}
	if attempts >= int64(s.cfg.MaxLoginAttempts) {
		lockoutKey := fmt.Sprintf("lockout:%s", username)
		_ = s.cacheRepo.Set(ctx, lockoutKey, "locked", s.cfg.LockoutDuration)
		_ = s.cacheRepo.Del(ctx, attemptsKey)
	}
}

func (s *AuthService) resetLoginAttempts(ctx context.Context, username string) {
	attemptsKey := fmt.Sprintf("login_attempts:%s", username)
	lockoutKey := fmt.Sprintf("lockout:%s", username)
	_ = s.cacheRepo.Del(ctx, attemptsKey, lockoutKey)
}
