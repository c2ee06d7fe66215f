package auth

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogoutHandler(t *testing.T) {
	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/logout", "")
	require.NoError(t, LogoutHandler()(c))
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	require.True(t, env.Success)
	require.Equal(t, "Logged out successfully", env.Message)
	require.Empty(t, env.Data)
}
