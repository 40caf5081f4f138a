package security

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityServer(t *testing.T, status int, user *User) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/info" {
			http.NotFound(w, r)
			return
		}
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(user)
	}))
}

func TestRoleGate_AdminAllowed(t *testing.T) {
	srv := identityServer(t, http.StatusOK, &User{
		ID: 1, Name: "ops", Role: Role{ID: 1, Name: "Admin"},
	})
	defer srv.Close()

	gate := NewRoleGate(NewIdentityClient(srv.URL), []string{"Admin"})
	assert.NoError(t, gate.ValidateRole("Bearer token"))
}

func TestRoleGate_OtherRoleForbidden(t *testing.T) {
	srv := identityServer(t, http.StatusOK, &User{
		ID: 2, Name: "guest", Role: Role{ID: 2, Name: "User"},
	})
	defer srv.Close()

	gate := NewRoleGate(NewIdentityClient(srv.URL), []string{"Admin"})
	assert.ErrorIs(t, gate.ValidateRole("Bearer token"), ErrForbidden)
}

// Matching is exact and case-sensitive.
func TestRoleGate_CaseSensitive(t *testing.T) {
	srv := identityServer(t, http.StatusOK, &User{
		Role: Role{Name: "admin"},
	})
	defer srv.Close()

	gate := NewRoleGate(NewIdentityClient(srv.URL), []string{"Admin"})
	assert.ErrorIs(t, gate.ValidateRole("Bearer token"), ErrForbidden)
}

func TestRoleGate_ConfiguredRoleSet(t *testing.T) {
	srv := identityServer(t, http.StatusOK, &User{
		Role: Role{Name: "Operator"},
	})
	defer srv.Close()

	gate := NewRoleGate(NewIdentityClient(srv.URL), []string{"Admin", "Operator"})
	assert.NoError(t, gate.ValidateRole("Bearer token"))
}

func TestIdentityClient_401MapsToUnauthenticated(t *testing.T) {
	srv := identityServer(t, http.StatusUnauthorized, nil)
	defer srv.Close()

	_, err := NewIdentityClient(srv.URL).CurrentUser("Bearer bad")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

// Infrastructure failures are never converted into authorization decisions.
func TestIdentityClient_ServerErrorPropagates(t *testing.T) {
	srv := identityServer(t, http.StatusInternalServerError, nil)
	defer srv.Close()

	_, err := NewIdentityClient(srv.URL).CurrentUser("Bearer token")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnauthenticated)
	assert.NotErrorIs(t, err, ErrForbidden)
}

func TestIdentityClient_ForwardsAuthorizationHeader(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(&User{Role: Role{Name: "Admin"}})
	}))
	defer srv.Close()

	_, err := NewIdentityClient(srv.URL).CurrentUser("Bearer forwarded")
	require.NoError(t, err)
	assert.Equal(t, "Bearer forwarded", got)
}
