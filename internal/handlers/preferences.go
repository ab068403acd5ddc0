package handlers

import (
	"net/http"
	"strings"

	applog "aromaforge/internal/log"
	"aromaforge/models"
)

type preferencesResponse struct {
	Concentration string `json:"concentration"`
	Intensity     string `json:"intensity"`
}

// UpdatePreferences persists the composer defaults for the authenticated user.
func UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	user, err := loadCurrentUser(r)
	if err != nil {
		applog.Error(r.Context(), "unable to load current user for preferences", "error", err)
		http.Error(w, "unable to load account", http.StatusUnauthorized)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	concentrationValue := strings.ToLower(strings.TrimSpace(r.FormValue("concentration")))
	intensityValue := strings.ToLower(strings.TrimSpace(r.FormValue("intensity")))
	if concentrationValue != "" && !models.ValidConcentration(concentrationValue) {
		http.Error(w, "invalid concentration selection", http.StatusBadRequest)
		return
	}
	if intensityValue != "" && !models.ValidIntensity(intensityValue) {
		http.Error(w, "invalid projection selection", http.StatusBadRequest)
		return
	}

	concentration := models.NormalizeConcentration(concentrationValue)
	intensity := models.NormalizeIntensity(intensityValue)

	updates := map[string]any{
		"concentration": concentration,
		"intensity":     intensity,
	}
	if err := database.WithContext(r.Context()).Model(user).Updates(updates).Error; err != nil {
		applog.Error(r.Context(), "failed to persist user preferences", "error", err)
		http.Error(w, "failed to save preferences", http.StatusInternalServerError)
		return
	}

	if sessionManager != nil {
		sessionManager.Put(r.Context(), sessionConcentrationKey, concentration)
		sessionManager.Put(r.Context(), sessionIntensityKey, intensity)
	}

	writeJSON(w, r, http.StatusOK, preferencesResponse{
		Concentration: concentration,
		Intensity:     intensity,
	})
}
