package authenticating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
)

func newTestService(secret string) *Service {
	return NewService(&config.Config{Auth: config.Auth{Secret: secret}}).(*Service)
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := newTestService("s3cr3t")

	token, err := service.GenerateToken("ana", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ana", claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Equal(t, "ana", claims.Subject)
}

func TestValidateToken_Errors(t *testing.T) {
	service := newTestService("s3cr3t")

	expired := newTestService("s3cr3t")
	expired.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	expiredToken, err := expired.GenerateToken("ana", domain.RoleViewer, time.Hour)
	require.NoError(t, err)

	otherSecretToken, err := newTestService("outro").GenerateToken("ana", domain.RoleViewer, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		err   error
		code  string
	}{
		{"expired", expiredToken, ErrExpiredToken, apiErrors.ErrExpiredToken},
		{"wrong secret", otherSecretToken, ErrInvalidToken, apiErrors.ErrInvalidToken},
		{"garbage", "not-a-token", ErrInvalidToken, apiErrors.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ValidateToken(tt.token)
			assert.ErrorIs(t, err, tt.err)

			var authErr *AuthError
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, tt.code, authErr.Code)
		})
	}
}

func TestGenerateToken_Validation(t *testing.T) {
	_, err := newTestService("").GenerateToken("ana", domain.RoleAdmin, time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = newTestService("s3cr3t").GenerateToken("ana", "root", time.Hour)
	assert.ErrorIs(t, err, ErrInvalidRole)
}
