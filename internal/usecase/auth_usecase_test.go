package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/config"
	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/model"
)

type authValidatorStub struct{}

func (s *authValidatorStub) ValidateLogin(ctx context.Context, email string, password string) error {
	return nil
}
func (s *authValidatorStub) ValidateRefresh(ctx context.Context, refreshToken string, userAgent string) error {
	return nil
}
func (s *authValidatorStub) ValidateForceLogout(ctx context.Context, targetUserID int64) error {
	if targetUserID <= 0 {
		return ErrValidation
	}
	return nil
}

func newAuthUC() (*AuthUsecase, *UserRepoMock, *RefreshTokenRepoMock) {
	users := new(UserRepoMock)
	rts := new(RefreshTokenRepoMock)
	cfg := config.Config{JWTSecret: "test-secret"}
	return NewAuthUsecase(cfg, users, rts, &authValidatorStub{}), users, rts
}

func adminUser(t *testing.T, password string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &model.User{
		ID:           1,
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
		TokenVersion: 3,
		IsActive:     true,
	}
}

func TestLogin_Success(t *testing.T) {
	uc, users, rts := newAuthUC()
	ctx := context.Background()

	user := adminUser(t, "password123")
	users.On("FindByEmail", ctx, "admin@example.com").Return(user, nil)
	users.On("Update", ctx, mock.Anything).Return(nil)
	rts.On("Create", ctx, mock.MatchedBy(func(rt *model.RefreshToken) bool {
		return rt.UserID == 1 && rt.TokenHash != "" && rt.ExpiresAt.After(time.Now())
	})).Return(nil)

	res, err := uc.Login(ctx, AuthLoginRequest{Email: "admin@example.com", Password: "password123"}, "ua")
	require.NoError(t, err)

	assert.NotEmpty(t, res.Body.Token.AccessToken)
	assert.Equal(t, 3, res.Body.Token.TokenVersion)
	assert.Equal(t, "admin@example.com", res.Body.User.Email)

	//平文refreshはcookie用に返る（DBにはhashだけ）
	assert.NotEmpty(t, res.RefreshTokenPlain)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, users, _ := newAuthUC()
	ctx := context.Background()

	users.On("FindByEmail", ctx, "admin@example.com").Return(adminUser(t, "password123"), nil)

	_, err := uc.Login(ctx, AuthLoginRequest{Email: "admin@example.com", Password: "wrong"}, "ua")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogin_NonAdminForbidden(t *testing.T) {
	uc, users, _ := newAuthUC()
	ctx := context.Background()

	user := adminUser(t, "password123")
	user.Role = model.RoleUser
	users.On("FindByEmail", ctx, "admin@example.com").Return(user, nil)

	_, err := uc.Login(ctx, AuthLoginRequest{Email: "admin@example.com", Password: "password123"}, "ua")
	assert.ErrorIs(t, err, ErrForbidden)
}

// used済みrefreshの再利用はreplay扱いで全削除
func TestRefresh_ReplayDeletesAll(t *testing.T) {
	uc, _, rts := newAuthUC()
	ctx := context.Background()

	used := time.Now().Add(-time.Minute)
	rts.On("FindByTokenHash", ctx, mock.Anything).Return(&model.RefreshToken{
		ID:        "rt-1",
		UserID:    1,
		ExpiresAt: time.Now().Add(time.Hour),
		UsedAt:    &used,
	}, nil)
	rts.On("DeleteAllByUserID", ctx, int64(1)).Return(nil)

	_, err := uc.Refresh(ctx, "stolen-token", "ua")
	assert.ErrorIs(t, err, ErrSecurityIncident)

	rts.AssertCalled(t, "DeleteAllByUserID", ctx, int64(1))
}

func TestForceLogout(t *testing.T) {
	uc, users, rts := newAuthUC()
	ctx := context.Background()

	users.On("IncrementTokenVersion", ctx, int64(1)).Return(nil)
	rts.On("DeleteAllByUserID", ctx, int64(1)).Return(nil)
	users.On("FindByID", ctx, int64(1)).Return(&model.User{ID: 1, TokenVersion: 4}, nil)

	res, err := uc.ForceLogout(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, res.NewTokenVersion)

	//不正IDは弾く
	_, err = uc.ForceLogout(ctx, 0)
	assert.Error(t, err)
}
