package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestLoginRendersForm(t *testing.T) {
	sm, cleanup := withTestSessionManager(t)
	t.Cleanup(cleanup)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req = withSessionContext(t, sm, req)
	w := httptest.NewRecorder()
	Login(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `name="email"`) || !strings.Contains(body, `name="password"`) {
		t.Fatal("expected the login form fields")
	}
}

func TestLoginRedirectsActiveSession(t *testing.T) {
	sm, cleanup := withTestSessionManager(t)
	t.Cleanup(cleanup)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req = withSessionContext(t, sm, req)
	sm.Put(req.Context(), sessionAuthenticatedKey, true)
	sm.Put(req.Context(), sessionUserIDKey, 1)

	w := httptest.NewRecorder()
	Login(w, req)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/app" {
		t.Fatalf("expected redirect to /app, got %q", loc)
	}
}

func TestLoginPost(t *testing.T) {
	sm, smCleanup := withTestSessionManager(t)
	t.Cleanup(smCleanup)
	_, dbCleanup := withTestDatabase(t)
	t.Cleanup(dbCleanup)

	seedReq := httptest.NewRequest(http.MethodPost, "/signup", nil)
	if _, err := createUser(seedReq, "login@example.com", "Login", "password123"); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	post := func(form url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req = withSessionContext(t, sm, req)
		w := httptest.NewRecorder()
		Login(w, req)
		return w
	}

	w := post(url.Values{"email": {"login@example.com"}, "password": {"password123"}})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect after login, got %d", w.Code)
	}

	w = post(url.Values{"email": {"login@example.com"}, "password": {"wrong"}})
	if w.Code != http.StatusOK {
		t.Fatalf("expected form re-render on failure, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid email or password") {
		t.Fatal("expected failure message in the re-rendered form")
	}

	w = post(url.Values{"email": {""}, "password": {""}})
	if !strings.Contains(w.Body.String(), "Email and password are required") {
		t.Fatal("expected required-fields message")
	}
}

func TestSignupCreatesAccountAndSession(t *testing.T) {
	sm, smCleanup := withTestSessionManager(t)
	t.Cleanup(smCleanup)
	_, dbCleanup := withTestDatabase(t)
	t.Cleanup(dbCleanup)

	form := url.Values{
		"name":             {"New User"},
		"email":            {"new@example.com"},
		"password":         {"password123"},
		"confirm_password": {"password123"},
	}
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = withSessionContext(t, sm, req)
	w := httptest.NewRecorder()
	Signup(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect after signup, got %d: %s", w.Code, w.Body.String())
	}
	if !sm.GetBool(req.Context(), sessionAuthenticatedKey) {
		t.Fatal("expected session established after signup")
	}
	if got := sm.GetString(req.Context(), sessionUserEmailKey); got != "new@example.com" {
		t.Fatalf("unexpected session email %q", got)
	}
}

func TestSignupValidation(t *testing.T) {
	sm, smCleanup := withTestSessionManager(t)
	t.Cleanup(smCleanup)
	_, dbCleanup := withTestDatabase(t)
	t.Cleanup(dbCleanup)

	seedReq := httptest.NewRequest(http.MethodPost, "/signup", nil)
	if _, err := createUser(seedReq, "taken@example.com", "Taken", "password123"); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	cases := []struct {
		name    string
		form    url.Values
		message string
	}{
		{
			"bad email",
			url.Values{"email": {"not-an-email"}, "password": {"password123"}, "confirm_password": {"password123"}},
			"valid email address",
		},
		{
			"short password",
			url.Values{"email": {"a@b.com"}, "password": {"short"}, "confirm_password": {"short"}},
			"at least 8 characters",
		},
		{
			"mismatched confirmation",
			url.Values{"email": {"a@b.com"}, "password": {"password123"}, "confirm_password": {"password456"}},
			"do not match",
		},
		{
			"existing email",
			url.Values{"email": {"taken@example.com"}, "password": {"password123"}, "confirm_password": {"password123"}},
			"already exists",
		},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(tc.form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req = withSessionContext(t, sm, req)
		w := httptest.NewRecorder()
		Signup(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected form re-render, got %d", tc.name, w.Code)
		}
		if !strings.Contains(w.Body.String(), tc.message) {
			t.Fatalf("%s: expected message containing %q", tc.name, tc.message)
		}
	}
}
