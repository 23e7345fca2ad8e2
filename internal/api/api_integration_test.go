// internal/api/api_integration_test.go
package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app "usuarios-api/internal"
)

// testApp is the application under test; nil when DATABASE_URL is not set.
var testApp *app.Application

// testServer is the httptest server.
var testServer *httptest.Server

// TestMain initializes the application against the database in DATABASE_URL.
// Without it, every test in this file is skipped.
func TestMain(m *testing.M) {
	if os.Getenv("DATABASE_URL") == "" {
		os.Exit(m.Run())
	}
	os.Setenv("RATE_LIMIT_ENABLED", "false")
	os.Setenv("LOG_LEVEL", "error")

	testApp = app.NewApplication()
	if err := testApp.Initialize(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize test application: %v\n", err)
		os.Exit(1)
	}

	schema, err := os.ReadFile("../../db/schema.sql")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read schema: %v\n", err)
		os.Exit(1)
	}
	if _, err := testApp.DB.Exec(string(schema)); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to apply schema: %v\n", err)
		os.Exit(1)
	}

	testServer = httptest.NewServer(testApp.HTTPHandler)

	code := m.Run()

	testServer.Close()
	if err := testApp.Shutdown(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to shutdown test application: %v\n", err)
		os.Exit(1)
	}

	os.Exit(code)
}

// resetUsers empties the table and restarts the id sequence.
func resetUsers(t *testing.T) {
	t.Helper()
	if testApp == nil {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}
	_, err := testApp.DB.Exec("TRUNCATE usuarios RESTART IDENTITY")
	require.NoError(t, err)
}

func countUsers(t *testing.T) int {
	t.Helper()
	var n int
	require.NoError(t, testApp.DB.Get(&n, "SELECT COUNT(*) FROM usuarios"))
	return n
}

type userBody struct {
	ID       int64     `json:"id_usuario"`
	Name     string    `json:"nombre"`
	Email    string    `json:"correo"`
	Date     time.Time `json:"fecha_reg"`
	Password *string   `json:"password"`
}

func postUser(t *testing.T, body string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(testServer.URL+"/api/usuarios", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func listUsers(t *testing.T) []userBody {
	t.Helper()
	resp, err := http.Get(testServer.URL + "/api/usuarios")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var users []userBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&users))
	return users
}

func TestIntegration_CreateThenDuplicate(t *testing.T) {
	resetUsers(t)

	payload := `{"nombre":"Ana","correo":"ana@x.com","password":"p1"}`
	resp, data := postUser(t, payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(data))

	var created struct {
		Message string   `json:"mensaje"`
		User    userBody `json:"usuario"`
	}
	require.NoError(t, json.Unmarshal(data, &created))
	assert.Equal(t, int64(1), created.User.ID)
	assert.Equal(t, "Ana", created.User.Name)
	assert.Equal(t, "ana@x.com", created.User.Email)
	assert.Nil(t, created.User.Password)

	resp, data = postUser(t, payload)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	var errBody map[string]string
	require.NoError(t, json.Unmarshal(data, &errBody))
	assert.Contains(t, errBody["error"], "correo ya existe")

	assert.Equal(t, 1, countUsers(t))
}

func TestIntegration_EmptyList(t *testing.T) {
	resetUsers(t)

	resp, err := http.Get(testServer.URL + "/api/usuarios")
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(data))
}

func TestIntegration_MissingFields(t *testing.T) {
	resetUsers(t)

	resp, data := postUser(t, `{"nombre":"Ana"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var errBody map[string]string
	require.NoError(t, json.Unmarshal(data, &errBody))
	assert.NotEmpty(t, errBody["error"])

	assert.Equal(t, 0, countUsers(t))
}

func TestIntegration_ListNewestFirstAndRoundTrip(t *testing.T) {
	resetUsers(t)

	// The database clock may trail the test process slightly.
	before := time.Now().Add(-time.Second)
	for i := 1; i <= 3; i++ {
		resp, data := postUser(t, fmt.Sprintf(`{"nombre":"U%d","correo":"u%d@x.com","password":"p"}`, i, i))
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(data))
	}

	users := listUsers(t)
	require.Len(t, users, 3)
	for i, u := range users {
		assert.Equal(t, int64(3-i), u.ID)
		assert.Equal(t, fmt.Sprintf("U%d", 3-i), u.Name)
		assert.Equal(t, fmt.Sprintf("u%d@x.com", 3-i), u.Email)
		assert.False(t, u.Date.Before(before), "fecha_reg %s earlier than %s", u.Date, before)
		assert.Nil(t, u.Password)
	}
}
