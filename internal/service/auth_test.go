package service_test

import (
	"context"
	"testing"

	"github.com/P0n40/Shiftdailyreportapp/internal/kv"
	"github.com/P0n40/Shiftdailyreportapp/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthLogin(t *testing.T) {
	ctx := context.Background()
	auth := service.NewAuthService(kv.NewMemory())

	require.NoError(t, auth.EnsureAccount(ctx, "admin", "s3cret", "Administrator", "admin"))
	// second ensure leaves the account untouched
	require.NoError(t, auth.EnsureAccount(ctx, "admin", "other-password", "Impostor", "admin"))

	a, err := auth.Login(ctx, "admin", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "Administrator", a.Name)
	assert.Equal(t, "admin", a.Role)

	_, err = auth.Login(ctx, "admin", "other-password")
	require.Error(t, err)

	_, err = auth.Login(ctx, "nobody", "s3cret")
	require.Error(t, err)
}
