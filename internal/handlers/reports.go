package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"aromaforge/internal/batch"
	"aromaforge/internal/engine"
	applog "aromaforge/internal/log"
	"aromaforge/internal/views/pages"
	"aromaforge/models"
)

var (
	errBatchBlendNotFound = errors.New("reports: blend not found")
	nowFunc               = time.Now
)

// BatchReport renders a compounding sheet for a saved blend. The stored
// generation parameters are replayed through the engine, so the sheet always
// reflects the exact formula that was saved.
func BatchReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid submission.", http.StatusBadRequest)
		return
	}

	key := strings.ToLower(strings.TrimSpace(r.FormValue("key")))
	if key == "" {
		http.Error(w, "Select a saved blend before running the report.", http.StatusBadRequest)
		return
	}

	targetML, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue("target_ml")), 64)
	if err != nil || targetML <= 0 {
		http.Error(w, "Provide a positive target volume in millilitres.", http.StatusBadRequest)
		return
	}

	userID := 0
	if sessionManager != nil {
		userID = sessionManager.GetInt(r.Context(), sessionUserIDKey)
	}

	sheet, err := buildBatchSheet(r.Context(), uint(userID), key, targetML)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrInvalidDB):
			http.Error(w, "Reporting is unavailable because no database connection is configured.", http.StatusServiceUnavailable)
		case errors.Is(err, errBatchBlendNotFound):
			http.Error(w, "No saved blend was found under that key.", http.StatusNotFound)
		case errors.Is(err, batch.ErrInvalidVolume):
			http.Error(w, "The target volume cannot be computed for this blend.", http.StatusBadRequest)
		case errors.Is(err, batch.ErrEmptyFormula):
			http.Error(w, "The saved blend has no materials to weigh out.", http.StatusBadRequest)
		default:
			applog.Error(r.Context(), "failed to build batch sheet", "error", err, "key", key)
			http.Error(w, "We were unable to generate the batch sheet. Please try again.", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.BatchSheet(sheet).Render(r.Context(), w); err != nil {
		applog.Error(r.Context(), "failed to render batch sheet", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func buildBatchSheet(ctx context.Context, userID uint, key string, targetML float64) (batch.Sheet, error) {
	if database == nil {
		return batch.Sheet{}, gorm.ErrInvalidDB
	}

	var blend models.Blend
	err := database.WithContext(ctx).
		Where("owner_id = ? AND key = ? AND is_latest = ?", userID, key, true).
		First(&blend).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return batch.Sheet{}, errBatchBlendNotFound
		}
		return batch.Sheet{}, err
	}

	result := composer.Generate(engine.Request{
		Dominant:      blend.Dominant,
		Secondary:     blend.Secondary,
		Accent:        blend.Accent,
		Identifier:    blend.Identifier,
		Concentration: blend.Concentration,
		Occasion:      blend.Occasion,
		Intensity:     blend.Intensity,
	})

	return batch.Build(result, targetML, nowFunc().UTC())
}
