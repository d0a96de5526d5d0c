package stubapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shahidulislam-dev/warehouse-console/internal/domain"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(Config{JWTSecret: "test-secret", TokenTTL: time.Hour, BcryptCost: 4}, nil)
}

func doJSON(t *testing.T, srv *Server, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestSignupThenLoginFlow(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodPost, "/api/auth/signup", "", domain.SignupRequest{
		FullName: "New Staff", Email: "staff@example.com", Password: "pw",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Duplicate email conflicts.
	resp = doJSON(t, srv, http.MethodPost, "/api/auth/signup", "", domain.SignupRequest{
		FullName: "Imposter", Email: "staff@example.com", Password: "pw",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Inactive accounts cannot log in.
	resp = doJSON(t, srv, http.MethodPost, "/api/auth/login", "", domain.LoginRequest{
		Email: "staff@example.com", Password: "pw",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var errBody map[string]string
	decodeBody(t, resp, &errBody)
	assert.Equal(t, "account awaiting approval", errBody["message"])

	// Wrong password again after activation.
	_, err := srv.SeedUser("Active", "active@example.com", "000", "rightpw", domain.RoleStaff, domain.UserStatusActive)
	require.NoError(t, err)
	resp = doJSON(t, srv, http.MethodPost, "/api/auth/login", "", domain.LoginRequest{
		Email: "active@example.com", Password: "wrongpw",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, srv, http.MethodPost, "/api/auth/login", "", domain.LoginRequest{
		Email: "active@example.com", Password: "rightpw",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var loginBody map[string]string
	decodeBody(t, resp, &loginBody)
	assert.NotEmpty(t, loginBody["token"])
}

func TestAuthRequired(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodGet, "/api/warehouse/get/all", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, srv, http.MethodGet, "/api/warehouse/get/all", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// A valid token for an account that no longer exists is rejected too.
	orphan, err := srv.IssueToken("ghost@example.com", domain.RoleAdmin)
	require.NoError(t, err)
	resp = doJSON(t, srv, http.MethodGet, "/api/warehouse/get/all", orphan, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestDeactivatedAccountIsRejected(t *testing.T) {
	srv := newTestServer(t)
	_, err := srv.SeedUser("Staff", "staff@example.com", "000", "pw", domain.RoleStaff, domain.UserStatusInactive)
	require.NoError(t, err)

	token, err := srv.IssueToken("staff@example.com", domain.RoleStaff)
	require.NoError(t, err)

	// The token itself is valid; the status flag revokes it server-side.
	resp := doJSON(t, srv, http.MethodGet, "/api/warehouse/get/all", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestRoleEnforcement(t *testing.T) {
	srv := newTestServer(t)
	_, err := srv.SeedUser("Staff", "staff@example.com", "000", "pw", domain.RoleStaff, domain.UserStatusActive)
	require.NoError(t, err)
	_, err = srv.SeedUser("Admin", "admin@example.com", "111", "pw", domain.RoleAdmin, domain.UserStatusActive)
	require.NoError(t, err)

	staffToken, err := srv.IssueToken("staff@example.com", domain.RoleStaff)
	require.NoError(t, err)
	adminToken, err := srv.IssueToken("admin@example.com", domain.RoleAdmin)
	require.NoError(t, err)

	// Listing users is admin and up.
	resp := doJSON(t, srv, http.MethodGet, "/api/auth/get", staffToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, srv, http.MethodGet, "/api/auth/get", adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Creating super-admins is super-admin only.
	resp = doJSON(t, srv, http.MethodPost, "/api/auth/create/super/admin", adminToken, domain.SignupRequest{
		FullName: "Root", Email: "root@example.com", Password: "pw",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// Staff may create entities but not delete them.
	resp = doJSON(t, srv, http.MethodPost, "/api/warehouse/create", staffToken, domain.WarehouseRequest{Name: "Depot"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, srv, http.MethodGet, "/api/warehouse/get/all", staffToken, nil)
	var warehouses []domain.Warehouse
	decodeBody(t, resp, &warehouses)
	require.Len(t, warehouses, 1)
	deletePath := "/api/warehouse/delete/" + strconv.Itoa(warehouses[0].ID)

	resp = doJSON(t, srv, http.MethodDelete, deletePath, staffToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, srv, http.MethodDelete, deletePath, adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestRoleChangeEndpoint(t *testing.T) {
	srv := newTestServer(t)
	admin, err := srv.SeedUser("Admin", "admin@example.com", "000", "pw", domain.RoleAdmin, domain.UserStatusActive)
	require.NoError(t, err)
	staff, err := srv.SeedUser("Staff", "staff@example.com", "111", "pw", domain.RoleStaff, domain.UserStatusActive)
	require.NoError(t, err)

	adminToken, err := srv.IssueToken(admin.Email, admin.Role)
	require.NoError(t, err)

	// Nobody changes their own role.
	resp := doJSON(t, srv, http.MethodPost, "/api/auth/update/role", adminToken, map[string]any{
		"id": strconv.Itoa(admin.ID), "role": "staff",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// Admin promoting staff is allowed. Note the id travels as a string.
	resp = doJSON(t, srv, http.MethodPost, "/api/auth/update/role", adminToken, map[string]any{
		"id": strconv.Itoa(staff.ID), "role": "admin",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// The promoted account is now a peer, so a second change is refused.
	resp = doJSON(t, srv, http.MethodPost, "/api/auth/update/role", adminToken, map[string]any{
		"id": strconv.Itoa(staff.ID), "role": "staff",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestParentExistenceChecks(t *testing.T) {
	srv := newTestServer(t)
	_, err := srv.SeedUser("Admin", "admin@example.com", "000", "pw", domain.RoleAdmin, domain.UserStatusActive)
	require.NoError(t, err)
	token, err := srv.IssueToken("admin@example.com", domain.RoleAdmin)
	require.NoError(t, err)

	resp := doJSON(t, srv, http.MethodPost, "/api/floor/create", token, domain.FloorRequest{
		Name: "Ground", WarehouseID: 999,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, srv, http.MethodPost, "/api/room/create", token, domain.RoomRequest{
		Name: "Cold Store", FloorID: 999,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)
	resp := doJSON(t, srv, http.MethodGet, "/health/live", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "ok", body["status"])
}
