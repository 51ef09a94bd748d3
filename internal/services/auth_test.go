package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"employee-portal/internal/dto"
	"employee-portal/internal/entities"
	"employee-portal/pkg/config"
	apperrors "employee-portal/pkg/errors"
	"employee-portal/pkg/service"
	"employee-portal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type AuthServiceTestSuite struct {
	suite.Suite
	cache *fakeCache
	svc   AuthServiceInterface
}

func (s *AuthServiceTestSuite) SetupTest() {
	hash, err := utils.HashPassword("s3cret")
	s.Require().NoError(err)

	s.cache = newFakeCache()
	users := &fakeUserRepo{users: map[string]*entities.AppUser{
		"admin": {ID: 1, Username: "admin", PasswordHash: hash},
	}}
	s.svc = NewAuthService(
		users,
		s.cache,
		service.NewJWTService("test-secret", time.Hour, zap.NewNop()),
		zap.NewNop(),
		&config.AuthConfig{MaxLoginAttempts: 3, LockoutDuration: time.Minute},
	)
}

func (s *AuthServiceTestSuite) TestLoginSuccess() {
	user, err := s.svc.Login(context.Background(), dto.LoginDTO{Username: "admin", Password: "s3cret"})
	s.Require().NoError(err)
	s.Equal(int64(1), user.ID)
}

func (s *AuthServiceTestSuite) TestLoginWrongPasswordAndUnknownUserLookAlike() {
	_, errWrong := s.svc.Login(context.Background(), dto.LoginDTO{Username: "admin", Password: "nope"})
	_, errUnknown := s.svc.Login(context.Background(), dto.LoginDTO{Username: "ghost", Password: "nope"})

	s.ErrorIs(errWrong, apperrors.ErrInvalidCredentials)
	s.ErrorIs(errUnknown, apperrors.ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestLockoutAfterRepeatedFailures() {
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := s.svc.Login(ctx, dto.LoginDTO{Username: "admin", Password: "bad"})
		s.ErrorIs(err, apperrors.ErrInvalidCredentials)
	}

	_, err := s.svc.Login(ctx, dto.LoginDTO{Username: "admin", Password: "s3cret"})
	var httpErr *apperrors.HttpError
	s.Require().ErrorAs(err, &httpErr)
	s.Equal(http.StatusTooManyRequests, httpErr.Code)
}

func (s *AuthServiceTestSuite) TestSuccessfulLoginResetsCounter() {
	ctx := context.Background()
	_, _ = s.svc.Login(ctx, dto.LoginDTO{Username: "admin", Password: "bad"})
	_, err := s.svc.Login(ctx, dto.LoginDTO{Username: "admin", Password: "s3cret"})
	s.Require().NoError(err)

	_, present := s.cache.values["login_attempts:admin"]
	s.False(present)
}

func (s *AuthServiceTestSuite) TestSessionLifecycle() {
	ctx := context.Background()
	token, err := s.svc.StartSession(ctx, &entities.AppUser{ID: 1, Username: "admin"})
	s.Require().NoError(err)

	identity, err := s.svc.ResolveSession(ctx, token)
	s.Require().NoError(err)
	s.Equal("admin", identity.Username)

	s.Require().NoError(s.svc.EndSession(ctx, token))

	_, err = s.svc.ResolveSession(ctx, token)
	s.ErrorIs(err, apperrors.ErrSessionNotFound)
}

func (s *AuthServiceTestSuite) TestEndSessionIgnoresGarbage() {
	s.NoError(s.svc.EndSession(context.Background(), "not-a-token"))
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func TestSessionTTLSeconds(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{}, newFakeCache(),
		service.NewJWTService("k", 90*time.Second, zap.NewNop()), zap.NewNop(), &config.AuthConfig{})
	require.NotNil(t, svc)
	assert.Equal(t, 90, svc.SessionTTLSeconds())
}
