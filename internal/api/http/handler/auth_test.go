package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/okorolev/auth-server/internal/mocks"
	"github.com/okorolev/auth-server/internal/model"
	"github.com/okorolev/auth-server/internal/testutil"
)

func newAuthApp(t *testing.T) (*fiber.App, *mocks.AccountService) {
	t.Helper()

	accounts := mocks.NewAccountService(t)
	h := NewAuth(accounts, testutil.MakeNoopLogger())

	app := fiber.New()
	app.Post("/auth/register", h.Register)
	app.Post("/auth/activate-account", h.ActivateAccount)
	app.Post("/auth/login", h.Login)
	app.Post("/auth/forgot-password", h.ForgotPassword)
	app.Post("/auth/reset-password", h.ResetPassword)

	return app, accounts
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)

	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]string {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))

	return body
}

func TestAuth_Register(t *testing.T) {
	t.Parallel()

	t.Run("created", func(t *testing.T) {
		t.Parallel()

		app, accounts := newAuthApp(t)
		accounts.On("Register", mock.Anything, "anna", "anna@example.com", "secret").Return(nil)

		resp := postJSON(t, app, "/auth/register",
			`{"name":"anna","email":"anna@example.com","password":"secret"}`)

		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Registration successful, please check your email to activate your account.", body["message"])
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()

		app, accounts := newAuthApp(t)
		accounts.On("Register", mock.Anything, "anna", "anna@example.com", "secret").
			Return(model.ErrDuplicateEmail)

		resp := postJSON(t, app, "/auth/register",
			`{"name":"anna","email":"anna@example.com","password":"secret"}`)

		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Email is already registered.", body["error"])
	})

	t.Run("invalid email rejected before service", func(t *testing.T) {
		t.Parallel()

		app, accounts := newAuthApp(t)

		resp := postJSON(t, app, "/auth/register",
			`{"name":"anna","email":"not-an-email","password":"secret"}`)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		accounts.AssertNotCalled(t, "Register")
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		t.Parallel()

		app, accounts := newAuthApp(t)

		resp := postJSON(t, app, "/auth/register", `{"email":"anna@example.com"}`)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		accounts.AssertNotCalled(t, "Register")
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		app, accounts := newAuthApp(t)

		resp := postJSON(t, app, "/auth/register", `{"name":`)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Invalid request body.", body["error"])
		accounts.AssertNotCalled(t, "Register")
	})

	t.Run("internal error is masked", func(t *testing.T) {
		t.Parallel()

		app, accounts := newAuthApp(t)
		accounts.On("Register", mock.Anything, "anna", "anna@example.com", "secret").
			Return(errors.New("smtp connect: connection refused"))

		resp := postJSON(t, app, "/auth/register",
			`{"name":"anna","email":"anna@example.com","password":"secret"}`)

		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Something went wrong. Please try again later.", body["error"])
	})
}

func TestAuth_ActivateAccount(t *testing.T) {
	t.Parallel()

	t.Run("activated", func(t *testing.T) {
		t.Parallel()

		app, accounts := newAuthApp(t)
		accounts.On("Activate", mock.Anything, "tok-1").Return(nil)

		resp := postJSON(t, app, "/auth/activate-account", `{"token":"tok-1"}`)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Account activated successfully.", body["message"])
	})

	t.Run("unknown token", func(t *testing.T) {
		t.Parallel()

		app, accounts := newAuthApp(t)
		accounts.On("Activate", mock.Anything, "tok-1").Return(model.ErrInvalidToken)

		resp := postJSON(t, app, "/auth/activate-account", `{"token":"tok-1"}`)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Invalid or expired token.", body["error"])
	})

	t.Run("empty token rejected", func(t *testing.T) {
		t.Parallel()

		app, accounts := newAuthApp(t)

		resp := postJSON(t, app, "/auth/activate-account", `{"token":""}`)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		accounts.AssertNotCalled(t, "Activate")
	})
}

func TestAuth_Login(t *testing.T) {
	t.Parallel()

	t.Run("returns token", func(t *testing.T) {
		t.Parallel()

		app, accounts := newAuthApp(t)
		accounts.On("Login", mock.Anything, "anna@example.com", "secret").
			Return("session-token", nil)

		resp := postJSON(t, app, "/auth/login",
			`{"email":"anna@example.com","password":"secret"}`)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "session-token", body["token"])
	})

	t.Run("bad credentials", func(t *testing.T) {
		t.Parallel()

		app, accounts := newAuthApp(t)
		accounts.On("Login", mock.Anything, "anna@example.com", "wrong").
			Return("", model.ErrInvalidCredentials)

		resp := postJSON(t, app, "/auth/login",
			`{"email":"anna@example.com","password":"wrong"}`)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Invalid email or password.", body["error"])
	})

	t.Run("account not activated", func(t *testing.T) {
		t.Parallel()

		app, accounts := newAuthApp(t)
		accounts.On("Login", mock.Anything, "anna@example.com", "secret").
			Return("", model.ErrNotActivated)

		resp := postJSON(t, app, "/auth/login",
			`{"email":"anna@example.com","password":"secret"}`)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Account is not activated.", body["error"])
	})

	t.Run("missing password rejected", func(t *testing.T) {
		t.Parallel()

		app, accounts := newAuthApp(t)

		resp := postJSON(t, app, "/auth/login", `{"email":"anna@example.com"}`)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		accounts.AssertNotCalled(t, "Login")
	})
}

func TestAuth_ForgotPassword(t *testing.T) {
	t.Parallel()

	t.Run("same response for known and unknown email", func(t *testing.T) {
		t.Parallel()

		app, accounts := newAuthApp(t)
		accounts.On("ForgotPassword", mock.Anything, "anna@example.com").Return(nil)
		accounts.On("ForgotPassword", mock.Anything, "ghost@example.com").Return(nil)

		known := postJSON(t, app, "/auth/forgot-password", `{"email":"anna@example.com"}`)
		unknown := postJSON(t, app, "/auth/forgot-password", `{"email":"ghost@example.com"}`)

		assert.Equal(t, fiber.StatusOK, known.StatusCode)
		assert.Equal(t, fiber.StatusOK, unknown.StatusCode)
		assert.Equal(t, decodeBody(t, known), decodeBody(t, unknown))
	})

	t.Run("invalid email rejected", func(t *testing.T) {
		t.Parallel()

		app, accounts := newAuthApp(t)

		resp := postJSON(t, app, "/auth/forgot-password", `{"email":"nope"}`)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		accounts.AssertNotCalled(t, "ForgotPassword")
	})
}

func TestAuth_ResetPassword(t *testing.T) {
	t.Parallel()

	t.Run("password reset", func(t *testing.T) {
		t.Parallel()

		app, accounts := newAuthApp(t)
		accounts.On("ResetPassword", mock.Anything, "tok-1", "newpass", "newpass").Return(nil)

		resp := postJSON(t, app, "/auth/reset-password",
			`{"token":"tok-1","newPassword":"newpass","confirmPassword":"newpass"}`)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Password reset successfully.", body["message"])
	})

	t.Run("passwords do not match", func(t *testing.T) {
		t.Parallel()

		app, accounts := newAuthApp(t)
		accounts.On("ResetPassword", mock.Anything, "tok-1", "newpass", "other").
			Return(model.ErrPasswordMismatch)

		resp := postJSON(t, app, "/auth/reset-password",
			`{"token":"tok-1","newPassword":"newpass","confirmPassword":"other"}`)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "New passwords do not match.", body["error"])
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()

		app, accounts := newAuthApp(t)
		accounts.On("ResetPassword", mock.Anything, "tok-1", "newpass", "newpass").
			Return(model.ErrInvalidToken)

		resp := postJSON(t, app, "/auth/reset-password",
			`{"token":"tok-1","newPassword":"newpass","confirmPassword":"newpass"}`)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Invalid or expired token.", body["error"])
	})

	t.Run("missing token rejected", func(t *testing.T) {
		t.Parallel()

		app, accounts := newAuthApp(t)

		resp := postJSON(t, app, "/auth/reset-password",
			`{"newPassword":"newpass","confirmPassword":"newpass"}`)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		accounts.AssertNotCalled(t, "ResetPassword")
	})
}
