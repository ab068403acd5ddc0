package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"aromaforge/internal/catalog"
	"aromaforge/internal/engine"
	applog "aromaforge/internal/log"
	"aromaforge/models"
)

var (
	errMissingBlendKey  = errors.New("blend key is required")
	errMissingBlendName = errors.New("blend name is required")
)

type saveBlendRequest struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	composeRequest
}

// Blends dispatches the saved blend collection endpoints. A POST re-runs the
// deterministic generation for the submitted parameters and persists the
// result as a new version under the given key; GET lists the caller's latest
// versions. A key suffix on the path returns that blend's full history.
func Blends(w http.ResponseWriter, r *http.Request) {
	if database == nil {
		writeJSONError(w, r, http.StatusServiceUnavailable, "blend storage is not available")
		return
	}

	userID := 0
	if sessionManager != nil {
		userID = sessionManager.GetInt(r.Context(), sessionUserIDKey)
	}
	if userID <= 0 {
		writeJSONError(w, r, http.StatusUnauthorized, "sign in to manage blends")
		return
	}

	key := strings.Trim(strings.TrimPrefix(r.URL.Path, "/app/api/blends"), "/")

	switch {
	case r.Method == http.MethodPost && key == "":
		saveBlend(w, r, uint(userID))
	case r.Method == http.MethodGet && key == "":
		listBlends(w, r, uint(userID))
	case r.Method == http.MethodGet:
		blendHistory(w, r, uint(userID), key)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func saveBlend(w http.ResponseWriter, r *http.Request, userID uint) {
	var req saveBlendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, r, http.StatusBadRequest, errInvalidComposePayload.Error())
		return
	}

	req.Key = strings.ToLower(strings.TrimSpace(req.Key))
	req.Name = strings.TrimSpace(req.Name)
	req.Dominant = strings.TrimSpace(req.Dominant)
	req.Identifier = strings.TrimSpace(req.Identifier)

	switch {
	case req.Key == "":
		writeJSONError(w, r, http.StatusBadRequest, errMissingBlendKey.Error())
		return
	case req.Name == "":
		writeJSONError(w, r, http.StatusBadRequest, errMissingBlendName.Error())
		return
	case req.Dominant == "":
		writeJSONError(w, r, http.StatusBadRequest, errMissingDominant.Error())
		return
	case req.Identifier == "":
		writeJSONError(w, r, http.StatusBadRequest, errMissingIdentifier.Error())
		return
	}

	// Fill from session preferences the same way the compose preview does,
	// so the persisted version matches what the user was shown.
	if req.Concentration == "" || req.Intensity == "" {
		concentration, intensity := sessionPreferences(r)
		if req.Concentration == "" {
			req.Concentration = concentration
		}
		if req.Intensity == "" {
			req.Intensity = intensity
		}
	}

	result := composer.Generate(engine.Request{
		Dominant:      req.Dominant,
		Secondary:     req.Secondary,
		Accent:        req.Accent,
		Identifier:    req.Identifier,
		Concentration: req.Concentration,
		Occasion:      req.Occasion,
		Intensity:     req.Intensity,
	})

	blend := models.Blend{
		Key:              req.Key,
		Name:             req.Name,
		Version:          1,
		IsLatest:         true,
		Dominant:         strings.ToLower(req.Dominant),
		Secondary:        strings.ToLower(strings.TrimSpace(req.Secondary)),
		Accent:           strings.ToLower(strings.TrimSpace(req.Accent)),
		Identifier:       req.Identifier,
		Concentration:    result.Concentration,
		Occasion:         strings.TrimSpace(req.Occasion),
		Intensity:        strings.TrimSpace(req.Intensity),
		SteepingCategory: result.Steeping.Category,
		SteepingMinDays:  result.Steeping.MinDays,
		SteepingMaxDays:  result.Steeping.MaxDays,
		Notes:            strings.Join(result.Notes, "\n"),
		Warnings:         strings.Join(result.Warnings, "\n"),
		OwnerID:          userID,
	}
	result.Formula.Walk(func(family string, layer catalog.Layer, pick *engine.Pick) {
		blend.Ingredients = append(blend.Ingredients, models.BlendIngredient{
			Family:         family,
			Layer:          string(layer),
			IngredientName: pick.Name,
			PercentLow:     pick.Percent.Low,
			PercentHigh:    pick.Percent.High,
			Supplier:       pick.Supplier,
		})
	})

	err := database.WithContext(r.Context()).Transaction(func(tx *gorm.DB) error {
		var latest models.Blend
		err := tx.Where("owner_id = ? AND key = ? AND is_latest = ?", userID, req.Key, true).
			First(&latest).Error
		switch {
		case err == nil:
			blend.Version = latest.Version + 1
			blend.ParentBlendID = &latest.ID
			if err := tx.Model(&latest).Update("is_latest", false).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			return err
		}
		return tx.Create(&blend).Error
	})
	if err != nil {
		applog.Error(r.Context(), "failed to save blend", "error", err, "key", req.Key)
		writeJSONError(w, r, http.StatusInternalServerError, "failed to save blend")
		return
	}

	applog.Info(r.Context(), "blend saved", "key", blend.Key, "version", blend.Version)
	writeJSON(w, r, http.StatusCreated, blend)
}

func listBlends(w http.ResponseWriter, r *http.Request, userID uint) {
	var blends []models.Blend
	err := database.WithContext(r.Context()).
		Where("owner_id = ? AND is_latest = ?", userID, true).
		Order("updated_at DESC").
		Find(&blends).Error
	if err != nil {
		applog.Error(r.Context(), "failed to list blends", "error", err)
		writeJSONError(w, r, http.StatusInternalServerError, "failed to list blends")
		return
	}
	writeJSON(w, r, http.StatusOK, blends)
}

func blendHistory(w http.ResponseWriter, r *http.Request, userID uint, key string) {
	var blends []models.Blend
	err := database.WithContext(r.Context()).
		Preload("Ingredients").
		Where("owner_id = ? AND key = ?", userID, strings.ToLower(key)).
		Order("version DESC").
		Find(&blends).Error
	if err != nil {
		applog.Error(r.Context(), "failed to load blend history", "error", err, "key", key)
		writeJSONError(w, r, http.StatusInternalServerError, "failed to load blend history")
		return
	}
	if len(blends) == 0 {
		writeJSONError(w, r, http.StatusNotFound, "no blend saved under that key")
		return
	}
	writeJSON(w, r, http.StatusOK, blends)
}
