package handlers

import (
	"net/http"

	templpkg "github.com/a-h/templ"

	applog "aromaforge/internal/log"
	"aromaforge/internal/views/pages"
	"aromaforge/models"
)

// Home renders the public landing page.
func Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Landing(ActiveSession(r)).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Workspace renders the composer workspace once a user is authenticated.
func Workspace(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	concentration, intensity := sessionPreferences(r)
	data := pages.WorkspaceData{
		Concentration: concentration,
		Intensity:     intensity,
		Families:      composer.Library().Families(),
	}
	if sessionManager != nil {
		data.UserName = sessionManager.GetString(r.Context(), sessionUserNameKey)
	}
	data.RecentBlends = recentBlendsForSession(r)

	var component templpkg.Component
	if isHTMX(r) {
		component = pages.WorkspacePartial(data)
	} else {
		component = pages.Workspace(data)
	}

	if err := component.Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func recentBlendsForSession(r *http.Request) []models.Blend {
	if database == nil || sessionManager == nil {
		return nil
	}
	userID := sessionManager.GetInt(r.Context(), sessionUserIDKey)
	if userID <= 0 {
		return nil
	}
	var blends []models.Blend
	err := database.WithContext(r.Context()).
		Where("owner_id = ? AND is_latest = ?", userID, true).
		Order("updated_at DESC").
		Limit(10).
		Find(&blends).Error
	if err != nil {
		applog.Error(r.Context(), "failed to load recent blends", "error", err)
		return nil
	}
	return blends
}
