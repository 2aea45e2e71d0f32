package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"taskboard/interfaces/api/middleware"
	"taskboard/pkg/utils"
)

const testSecret = "test-secret-key"

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/whoami", middleware.Protected(testSecret), func(c *fiber.Ctx) error {
		user, err := utils.GetUserFromContext(c)
		if err != nil {
			return utils.UnauthorizedResponse(c, "")
		}
		return c.SendString(user.ID.String())
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) (int, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}

	return resp.StatusCode, string(body)
}

func TestProtected_MissingHeader(t *testing.T) {
	t.Parallel()

	app := newProtectedApp()

	status, body := doRequest(t, app, "")
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
	if !strings.Contains(body, "No token provided") {
		t.Fatalf("expected no-token message, got %q", body)
	}
}

func TestProtected_MalformedHeader(t *testing.T) {
	t.Parallel()

	app := newProtectedApp()

	status, body := doRequest(t, app, "Bearer")
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
	if !strings.Contains(body, "No token provided") {
		t.Fatalf("expected no-token message, got %q", body)
	}
}

func TestProtected_GarbageToken(t *testing.T) {
	t.Parallel()

	app := newProtectedApp()

	status, body := doRequest(t, app, "Bearer not-a-jwt")
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
	if !strings.Contains(body, "Invalid token") {
		t.Fatalf("expected invalid-token message, got %q", body)
	}
}

func TestProtected_WrongSecret(t *testing.T) {
	t.Parallel()

	app := newProtectedApp()

	token, err := utils.GenerateToken(uuid.New(), "another-secret")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	status, _ := doRequest(t, app, "Bearer "+token)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
}

func TestProtected_ExpiredToken(t *testing.T) {
	t.Parallel()

	app := newProtectedApp()

	now := time.Now()
	claims := utils.JWTClaims{
		UserID: uuid.New().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}

	status, _ := doRequest(t, app, "Bearer "+token)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
}

func TestProtected_ValidTokenBindsSubject(t *testing.T) {
	t.Parallel()

	app := newProtectedApp()
	userID := uuid.New()

	token, err := utils.GenerateToken(userID, testSecret)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	status, body := doRequest(t, app, "Bearer "+token)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %q)", status, body)
	}
	if body != userID.String() {
		t.Fatalf("expected bound subject %s, got %q", userID, body)
	}
}
