package handler_test

// End-to-end handler tests: real router, real services, in-memory SQLite.
// Only the chat-completion provider is stubbed — everything else runs the
// same code paths as production.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jobwise/jobwise/internal/assistant"
	"github.com/jobwise/jobwise/internal/auth"
	"github.com/jobwise/jobwise/internal/handler"
	"github.com/jobwise/jobwise/internal/repository/sqlite"
	"github.com/jobwise/jobwise/internal/service"
)

// stubCompleter replaces the real chat-completion provider in tests.
type stubCompleter struct {
	reply string
	err   error
}

func (s *stubCompleter) Complete(context.Context, string, string) (string, error) {
	return s.reply, s.err
}

// testAPI wires the full API against an in-memory database. The router
// mirrors the production route table, including the auth middleware, so
// tests exercise cookies and 401s the way a browser would.
type testAPI struct {
	router    http.Handler
	completer *stubCompleter
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	db, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("sqlite.New(:memory:) error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	tokens, err := auth.NewTokenService("test-secret-test-secret-test-secret")
	if err != nil {
		t.Fatalf("auth.NewTokenService() error = %v", err)
	}
	// Cost 4 keeps bcrypt from dominating the test runtime.
	passwords := auth.NewPasswordServiceForTest(4)

	completer := &stubCompleter{reply: "stubbed completion"}

	profiles := service.NewProfileService(db.Users(), passwords, logger)
	jobs := service.NewJobService(db.Jobs(), logger)
	assistants := service.NewAssistantService(assistant.NewBot(), completer, db.Users(), logger)

	authHandler := handler.NewAuthHandler(profiles, tokens, logger)
	jobHandler := handler.NewJobHandler(jobs, profiles, logger)
	assistantHandler := handler.NewAssistantHandler(assistants, logger)

	router := chi.NewRouter()
	router.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", authHandler.HandleRegister)
		r.Post("/auth/login", authHandler.HandleLogin)
		r.Post("/auth/logout", authHandler.HandleLogout)
		r.Get("/jobs", jobHandler.HandleList)
		r.Get("/jobs/{id}", jobHandler.HandleGetByID)
		r.Get("/skills", jobHandler.HandleSkills)
		r.Get("/assistant/greeting", assistantHandler.HandleGreeting)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(tokens))
			r.Get("/me", authHandler.HandleMe)
			r.Put("/me/skills", authHandler.HandleUpdateSkills)
			r.Get("/jobs/recommended", jobHandler.HandleRecommended)
			r.Post("/assistant/message", assistantHandler.HandleMessage)
			r.Post("/assistant/completions", assistantHandler.HandleCompletions)
		})
	})

	return &testAPI{router: router, completer: completer}
}

// do runs a request against the router. body may be nil; cookies are
// attached as-is (usually the session cookie from a previous response).
func (a *testAPI) do(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	return rr
}

// register creates an account and returns the session cookie.
func (a *testAPI) register(t *testing.T, email string, skills []string) *http.Cookie {
	t.Helper()

	rr := a.do(t, http.MethodPost, "/api/auth/register", map[string]any{
		"name":     "Test User",
		"email":    email,
		"password": "password123",
		"skills":   skills,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("register returned %d: %s", rr.Code, rr.Body.String())
	}

	cookie := sessionCookie(rr)
	if cookie == nil {
		t.Fatal("register did not set a session cookie")
	}
	return cookie
}

// sessionCookie extracts the session cookie from a response, or nil.
func sessionCookie(rr *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == auth.CookieName && c.Value != "" {
			return c
		}
	}
	return nil
}

// decode unmarshals a JSON response body into v.
func decode(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(v); err != nil {
		t.Fatalf("decoding response %q: %v", rr.Body.String(), err)
	}
}

// uniqueEmail avoids collisions between subtests sharing one database.
var emailSeq int

func uniqueEmail() string {
	emailSeq++
	return fmt.Sprintf("user%d@example.com", emailSeq)
}
