package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"budgeteer/internal/models"
)

func TestRegistrationAndActivationFlow(t *testing.T) {
	app := setupApp(t)

	// Register a new user.
	rec := app.request("POST", "/api/v1/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"password123","password_confirmation":"password123"}`, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	if user["is_active"].(bool) {
		t.Error("expected new user to be inactive")
	}
	userID := uint(user["id"].(float64))

	// Login before activation is refused.
	rec = app.request("POST", "/api/v1/auth/login", `{"name":"Alice","password":"password123"}`, "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 before activation, got %d %s", rec.Code, rec.Body.String())
	}

	// Activate with the stored token.
	var activation models.ActivationToken
	if err := app.DB.Where("user_id = ?", userID).First(&activation).Error; err != nil {
		t.Fatalf("expected activation token: %v", err)
	}
	rec = app.request("POST", "/api/v1/auth/activate", fmt.Sprintf(`{"token":%q}`, activation.Token), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("activate failed: %d %s", rec.Code, rec.Body.String())
	}

	// The token is single-use.
	rec = app.request("POST", "/api/v1/auth/activate", fmt.Sprintf(`{"token":%q}`, activation.Token), "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for consumed token, got %d", rec.Code)
	}

	// Login now succeeds and the token works on protected routes.
	token := app.loginUser(t, "Alice")
	rec = app.request("GET", "/api/v1/profile", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("profile failed: %d %s", rec.Code, rec.Body.String())
	}
	profile := parseJSON(t, rec)["user"].(map[string]interface{})
	if profile["name"].(string) != "Alice" {
		t.Errorf("expected profile name Alice, got %v", profile["name"])
	}
}

func TestExpiredActivationToken(t *testing.T) {
	app := setupApp(t)

	rec := app.request("POST", "/api/v1/auth/register",
		`{"name":"Bob","email":"bob@example.com","password":"password123","password_confirmation":"password123"}`, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	userID := uint(parseJSON(t, rec)["user"].(map[string]interface{})["id"].(float64))

	var activation models.ActivationToken
	if err := app.DB.Where("user_id = ?", userID).First(&activation).Error; err != nil {
		t.Fatalf("expected activation token: %v", err)
	}
	app.DB.Model(&activation).Update("expires_at", time.Now().Add(-time.Minute))

	rec = app.request("POST", "/api/v1/auth/activate", fmt.Sprintf(`{"token":%q}`, activation.Token), "")
	if rec.Code != http.StatusGone {
		t.Fatalf("expected 410 for expired token, got %d %s", rec.Code, rec.Body.String())
	}

	// Expired tokens are consumed too.
	rec = app.request("POST", "/api/v1/auth/activate", fmt.Sprintf(`{"token":%q}`, activation.Token), "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for consumed token, got %d", rec.Code)
	}
}

func TestRegisterValidation(t *testing.T) {
	app := setupApp(t)

	cases := []struct {
		name string
		body string
	}{
		{"lowercase_name", `{"name":"alice","email":"a@example.com","password":"password123","password_confirmation":"password123"}`},
		{"bad_email", `{"name":"Alice","email":"not-an-email","password":"password123","password_confirmation":"password123"}`},
		{"short_password", `{"name":"Alice","email":"a@example.com","password":"short","password_confirmation":"short"}`},
		{"bad_role", `{"name":"Alice","email":"a@example.com","password":"password123","password_confirmation":"password123","role":"superuser"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := app.request("POST", "/api/v1/auth/register", tc.body, "")
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d %s", rec.Code, rec.Body.String())
			}
		})
	}

	t.Run("mismatched_confirmation", func(t *testing.T) {
		rec := app.request("POST", "/api/v1/auth/register",
			`{"name":"Alice","email":"a@example.com","password":"password123","password_confirmation":"password456"}`, "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d %s", rec.Code, rec.Body.String())
		}
	})
}

func TestTokenRefreshFlow(t *testing.T) {
	app := setupApp(t)
	app.registerActiveUser(t, "Carol", "carol@example.com")

	rec := app.request("POST", "/api/v1/auth/login", `{"name":"Carol","password":"password123"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	tokens := parseJSON(t, rec)
	refreshToken := tokens["refresh_token"].(string)

	// A refresh token cannot be used as an access token.
	rec = app.request("GET", "/api/v1/profile", "", refreshToken)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 using refresh token as access token, got %d", rec.Code)
	}

	// Exchanging it yields a working pair.
	rec = app.request("POST", "/api/v1/auth/refresh", fmt.Sprintf(`{"refresh_token":%q}`, refreshToken), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("refresh failed: %d %s", rec.Code, rec.Body.String())
	}
	newAccess := parseJSON(t, rec)["access_token"].(string)

	rec = app.request("GET", "/api/v1/profile", "", newAccess)
	if rec.Code != http.StatusOK {
		t.Errorf("expected refreshed access token to work, got %d", rec.Code)
	}
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/api/v1/profile", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", rec.Code)
	}

	rec = app.request("GET", "/api/v1/budgets", "", "garbage-token")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with invalid token, got %d", rec.Code)
	}
}
