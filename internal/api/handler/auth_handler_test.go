package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/smartspending/coach-api/internal/api"
	"github.com/smartspending/coach-api/internal/api/handler"
	"github.com/smartspending/coach-api/internal/core/domain"
	"github.com/smartspending/coach-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, name, email, password string) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.LoginResult, error)
}

func (s *stubAuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	return s.registerFn(ctx, name, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

// newTestEcho builds an echo with the production validator and error handler
// so tests exercise the real response envelope.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())
	return e
}

func doJSON(e *echo.Echo, handlerFn echo.HandlerFunc, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := handlerFn(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string) (*domain.User, error) {
			if name != "Ann" || email != "ann@x.com" || password != "hunter2" {
				t.Fatalf("unexpected args: %s %s %s", name, email, password)
			}
			return &domain.User{ID: "1", Name: name, Email: email, PasswordHash: "never-leaked"}, nil
		},
	}
	h := handler.NewAuthHandler(stub)

	rec := doJSON(e, h.Register, http.MethodPost, "/auth/register",
		`{"name":"Ann","email":"ann@x.com","password":"hunter2"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "1" || resp["name"] != "Ann" || resp["email"] != "ann@x.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if strings.Contains(rec.Body.String(), "never-leaked") {
		t.Fatalf("password hash leaked in response")
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	}
	h := handler.NewAuthHandler(stub)

	rec := doJSON(e, h.Register, http.MethodPost, "/auth/register",
		`{"email":"ann@x.com","password":"hunter2"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["detail"] != "Email already registered" {
		t.Fatalf("unexpected detail: %q", resp["detail"])
	}
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing email", `{"password":"x"}`, "email"},
		{"bad email", `{"email":"not-an-address","password":"x"}`, "email"},
		{"missing password", `{"email":"ann@x.com"}`, "password"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEcho()
			stub := &stubAuthService{
				registerFn: func(ctx context.Context, name, email, password string) (*domain.User, error) {
					t.Fatalf("service must not be called on invalid input")
					return nil, nil
				},
			}
			h := handler.NewAuthHandler(stub)

			rec := doJSON(e, h.Register, http.MethodPost, "/auth/register", tc.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tc.want) {
				t.Fatalf("expected message naming %q, got %s", tc.want, rec.Body.String())
			}
		})
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := handler.NewAuthHandler(stub)

	rec := doJSON(e, h.Register, http.MethodPost, "/auth/register", "not-json")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.LoginResult, error) {
			if email != "ann@x.com" || password != "hunter2" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &ports.LoginResult{AccessToken: "token123", TokenType: "bearer", HasFilledProfile: true}, nil
		},
	}
	h := handler.NewAuthHandler(stub)

	rec := doJSON(e, h.Login, http.MethodPost, "/auth/login",
		`{"email":"ann@x.com","password":"hunter2"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] != "token123" || resp["token_type"] != "bearer" || resp["has_filled_profile"] != true {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Login_FailureShapeIsUniform(t *testing.T) {
	// Wrong password and unknown email must produce byte-identical bodies
	// and the same status, so responses cannot be used to probe accounts.
	e := newTestEcho()
	h := handler.NewAuthHandler(&stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	})

	wrongPass := doJSON(e, h.Login, http.MethodPost, "/auth/login",
		`{"email":"ann@x.com","password":"wrong"}`)
	noUser := doJSON(e, h.Login, http.MethodPost, "/auth/login",
		`{"email":"ghost@x.com","password":"hunter2"}`)

	if wrongPass.Code != http.StatusBadRequest || noUser.Code != http.StatusBadRequest {
		t.Fatalf("expected 400/400, got %d/%d", wrongPass.Code, noUser.Code)
	}
	if wrongPass.Body.String() != noUser.Body.String() {
		t.Fatalf("failure bodies differ: %s vs %s", wrongPass.Body.String(), noUser.Body.String())
	}
	var resp map[string]string
	_ = json.Unmarshal(wrongPass.Body.Bytes(), &resp)
	if resp["detail"] != "Invalid email or password" {
		t.Fatalf("unexpected detail: %q", resp["detail"])
	}
}

func TestAuthHandler_Login_Throttled(t *testing.T) {
	e := newTestEcho()
	h := handler.NewAuthHandler(&stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.LoginResult, error) {
			return nil, domain.ErrTooManyLogins
		},
	})

	rec := doJSON(e, h.Login, http.MethodPost, "/auth/login",
		`{"email":"ann@x.com","password":"hunter2"}`)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	h := handler.NewAuthHandler(&stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.LoginResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	rec := doJSON(e, h.Login, http.MethodPost, "/auth/login", "{")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
