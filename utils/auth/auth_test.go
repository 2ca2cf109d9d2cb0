package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/sahilchouksey/pixel-portfolio/database/dbtest"
	"github.com/sahilchouksey/pixel-portfolio/model"
	"github.com/sahilchouksey/pixel-portfolio/utils/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	auth.HashCost = 4

	_, err := auth.HashPassword("short")
	assert.ErrorIs(t, err, auth.ErrPasswordTooShort)

	hash, err := auth.HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)

	assert.NoError(t, auth.VerifyPassword(hash, "admin123"))
	assert.ErrorIs(t, auth.VerifyPassword(hash, "admin124"), auth.ErrPasswordMismatch)
}

func TestJWTRoundTrip(t *testing.T) {
	manager := auth.NewJWTManager(auth.JWTConfig{Secret: "s3cret", Issuer: "pixel-portfolio"})

	issued, err := manager.GenerateAccessToken(7, "admin", "admin", 2)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.JTI)
	assert.WithinDuration(t, time.Now().Add(auth.DefaultTokenExpiry), issued.ExpiresAt, time.Minute)

	claims, err := manager.ValidateToken(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, 2, claims.TokenVersion)
	assert.Equal(t, issued.JTI, claims.ID)
}

func TestJWTRejectsForeignTokens(t *testing.T) {
	ours := auth.NewJWTManager(auth.JWTConfig{Secret: "s3cret", Issuer: "pixel-portfolio"})
	otherSecret := auth.NewJWTManager(auth.JWTConfig{Secret: "other", Issuer: "pixel-portfolio"})
	otherIssuer := auth.NewJWTManager(auth.JWTConfig{Secret: "s3cret", Issuer: "someone-else"})

	for name, m := range map[string]*auth.JWTManager{"secret": otherSecret, "issuer": otherIssuer} {
		issued, err := m.GenerateAccessToken(1, "admin", "admin", 0)
		require.NoError(t, err, name)
		_, err = ours.ValidateToken(issued.Token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken, name)
	}

	expired := auth.NewJWTManager(auth.JWTConfig{Secret: "s3cret", Issuer: "pixel-portfolio", Expiry: -time.Minute})
	// a non-positive expiry falls back to the default
	issued, err := expired.GenerateAccessToken(1, "admin", "admin", 0)
	require.NoError(t, err)
	_, err = ours.ValidateToken(issued.Token)
	assert.NoError(t, err)

	_, err = ours.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestBlacklist(t *testing.T) {
	db := dbtest.NewDB(t)
	svc := auth.NewBlacklistService(db)
	ctx := context.Background()

	require.NoError(t, svc.RevokeToken(ctx, "live", 1, time.Now().Add(time.Hour), "logout"))
	require.NoError(t, svc.RevokeToken(ctx, "stale", 1, time.Now().Add(-time.Hour), "logout"))

	revoked, err := svc.IsTokenRevoked(ctx, "live")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = svc.IsTokenRevoked(ctx, "stale")
	require.NoError(t, err)
	assert.False(t, revoked, "expired entries no longer matter")

	removed, err := svc.CleanupExpiredTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	var count int64
	require.NoError(t, db.Model(&model.JWTTokenBlacklist{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRevokeAllUserTokens(t *testing.T) {
	db := dbtest.NewDB(t)
	user := model.User{Username: "admin", PasswordHash: "x", IsSuperuser: true}
	require.NoError(t, db.Create(&user).Error)

	require.NoError(t, auth.NewBlacklistService(db).RevokeAllUserTokens(context.Background(), user.ID))

	var reloaded model.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	assert.Equal(t, 1, reloaded.TokenVersion)
}
