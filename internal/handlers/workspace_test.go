package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"aromaforge/models"
)

func TestWorkspaceRendersComposerForm(t *testing.T) {
	sm, smCleanup := withTestSessionManager(t)
	t.Cleanup(smCleanup)
	db, dbCleanup := withTestDatabase(t)
	t.Cleanup(dbCleanup)

	blend := models.Blend{
		Key:        "aurum-nocturne",
		Name:       "Aurum Nocturne",
		Version:    2,
		IsLatest:   true,
		Dominant:   "oriental",
		Identifier: "OWS-001",
		OwnerID:    9,
	}
	if err := db.Create(&blend).Error; err != nil {
		t.Fatalf("failed to seed blend: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/app", nil)
	req = withSessionContext(t, sm, req)
	sm.Put(req.Context(), sessionAuthenticatedKey, true)
	sm.Put(req.Context(), sessionUserIDKey, 9)
	sm.Put(req.Context(), sessionUserNameKey, "Avery")
	sm.Put(req.Context(), sessionConcentrationKey, models.ConcentrationExtrait)
	sm.Put(req.Context(), sessionIntensityKey, models.IntensityTrail)

	w := httptest.NewRecorder()
	Workspace(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Avery") {
		t.Fatal("expected the greeting to include the user name")
	}
	for _, family := range []string{"oriental", "woody", "citrus"} {
		if !strings.Contains(body, family) {
			t.Fatalf("expected family option %q in the composer form", family)
		}
	}
	if !strings.Contains(body, "Aurum Nocturne") {
		t.Fatal("expected the recent blends list to include the seeded blend")
	}
}

func TestWorkspacePartialForHTMX(t *testing.T) {
	sm, smCleanup := withTestSessionManager(t)
	t.Cleanup(smCleanup)

	req := httptest.NewRequest(http.MethodGet, "/app", nil)
	req.Header.Set("HX-Request", "true")
	req = withSessionContext(t, sm, req)
	sm.Put(req.Context(), sessionAuthenticatedKey, true)
	sm.Put(req.Context(), sessionUserIDKey, 4)

	w := httptest.NewRecorder()
	Workspace(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if strings.Contains(body, "<html") {
		t.Fatal("expected partial markup without the document shell")
	}
	if !strings.Contains(body, "dominant") {
		t.Fatal("expected the composer form in the partial")
	}
}

func TestWorkspaceRejectsNonGet(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/app", nil)
	w := httptest.NewRecorder()
	Workspace(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", w.Code)
	}
}

func TestHomeRendersLanding(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	Home(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "<html") {
		t.Fatal("expected a full document from the landing page")
	}
}
