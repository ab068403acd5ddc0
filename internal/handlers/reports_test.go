package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"aromaforge/models"
)

func postBatchReport(t *testing.T, ctxReq *http.Request, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/app/reports/batch", strings.NewReader(form.Encode()))
	req = req.WithContext(ctxReq.Context())
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	BatchReport(w, req)
	return w
}

func TestBatchReport(t *testing.T) {
	sm, smCleanup := withTestSessionManager(t)
	t.Cleanup(smCleanup)
	db, dbCleanup := withTestDatabase(t)
	t.Cleanup(dbCleanup)

	originalNow := nowFunc
	nowFunc = func() time.Time { return time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { nowFunc = originalNow })

	blend := models.Blend{
		Key:           "aurum-nocturne",
		Name:          "Aurum Nocturne",
		Version:       1,
		IsLatest:      true,
		Dominant:      "oriental",
		Secondary:     "woody",
		Accent:        "spicy",
		Identifier:    "OWS-001",
		Concentration: models.ConcentrationExtrait,
		Intensity:     models.IntensityTrail,
		OwnerID:       5,
	}
	if err := db.Create(&blend).Error; err != nil {
		t.Fatalf("failed to seed blend: %v", err)
	}

	base := httptest.NewRequest(http.MethodPost, "/app/reports/batch", nil)
	base = withSessionContext(t, sm, base)
	sm.Put(base.Context(), sessionAuthenticatedKey, true)
	sm.Put(base.Context(), sessionUserIDKey, 5)

	w := postBatchReport(t, base, url.Values{
		"key":       {"aurum-nocturne"},
		"target_ml": {"50"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, "AF-20260314-") {
		t.Fatal("expected the sheet to carry a lot number for the pinned run date")
	}
	if !strings.Contains(body, "Perfume oil") || !strings.Contains(body, "Ethanol") {
		t.Fatal("expected the weigh-out totals in the rendered sheet")
	}

	// Unknown key under the same session.
	w = postBatchReport(t, base, url.Values{
		"key":       {"missing"},
		"target_ml": {"50"},
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown key, got %d", w.Code)
	}
}

func TestBatchReportValidation(t *testing.T) {
	_, dbCleanup := withTestDatabase(t)
	t.Cleanup(dbCleanup)
	sm, smCleanup := withTestSessionManager(t)
	t.Cleanup(smCleanup)

	base := httptest.NewRequest(http.MethodPost, "/app/reports/batch", nil)
	base = withSessionContext(t, sm, base)

	cases := []struct {
		name string
		form url.Values
		want int
	}{
		{"missing key", url.Values{"target_ml": {"50"}}, http.StatusBadRequest},
		{"missing volume", url.Values{"key": {"x"}}, http.StatusBadRequest},
		{"zero volume", url.Values{"key": {"x"}, "target_ml": {"0"}}, http.StatusBadRequest},
		{"negative volume", url.Values{"key": {"x"}, "target_ml": {"-10"}}, http.StatusBadRequest},
	}
	for _, tc := range cases {
		w := postBatchReport(t, base, tc.form)
		if w.Code != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, w.Code)
		}
	}
}

func TestBatchReportWithoutDatabase(t *testing.T) {
	sm, smCleanup := withTestSessionManager(t)
	t.Cleanup(smCleanup)

	base := httptest.NewRequest(http.MethodPost, "/app/reports/batch", nil)
	base = withSessionContext(t, sm, base)

	w := postBatchReport(t, base, url.Values{
		"key":       {"x"},
		"target_ml": {"50"},
	})
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without a database, got %d", w.Code)
	}
}

func TestBatchReportRejectsNonPost(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/app/reports/batch", nil)
	w := httptest.NewRecorder()
	BatchReport(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", w.Code)
	}
}
