package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"aromaforge/internal/catalog"
	"aromaforge/internal/engine"
	applog "aromaforge/internal/log"
	"aromaforge/internal/narrative"
	"aromaforge/internal/views/pages"
)

var (
	errInvalidComposePayload = errors.New("invalid compose payload")
	errMissingDominant       = errors.New("dominant family is required")
	errMissingIdentifier     = errors.New("batch identifier is required")
)

type composeRequest struct {
	Dominant      string `json:"dominant"`
	Secondary     string `json:"secondary"`
	Accent        string `json:"accent"`
	Identifier    string `json:"identifier"`
	Concentration string `json:"concentration"`
	Occasion      string `json:"occasion"`
	Intensity     string `json:"intensity"`
}

type composeLine struct {
	Family   string  `json:"family"`
	Layer    string  `json:"layer"`
	Name     string  `json:"name"`
	Low      float64 `json:"low"`
	High     float64 `json:"high"`
	Supplier string  `json:"supplier,omitempty"`
}

type composeResponse struct {
	Card            narrative.Card  `json:"card"`
	Lines           []composeLine   `json:"lines"`
	Hero            *composeLine    `json:"hero,omitempty"`
	HeroFamily      string          `json:"hero_family"`
	IngredientCount int             `json:"ingredient_count"`
	Steeping        engine.Steeping `json:"steeping"`
	Concentration   string          `json:"concentration"`
	Warnings        []string        `json:"warnings,omitempty"`
	Notes           []string        `json:"notes,omitempty"`
}

// Compose runs one generation and returns the result as JSON, or as a
// rendered formula card when the request comes from the workspace via htmx.
func Compose(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	req, err := parseComposeRequest(r)
	if err != nil {
		if isHTMX(r) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		} else {
			writeJSONError(w, r, http.StatusBadRequest, err.Error())
		}
		return
	}

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
	card := narrative.Compose(result, engine.Request{
		Dominant:   req.Dominant,
		Secondary:  req.Secondary,
		Accent:     req.Accent,
		Identifier: req.Identifier,
	})

	applog.Debug(r.Context(), "composed formula",
		"identifier", req.Identifier,
		"dominant", req.Dominant,
		"ingredients", result.IngredientCount,
	)

	if isHTMX(r) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := pages.FormulaCard(result, card).Render(r.Context(), w); err != nil {
			applog.Error(r.Context(), "failed to render formula card", "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, r, http.StatusOK, buildComposeResponse(result, card))
}

func parseComposeRequest(r *http.Request) (composeRequest, error) {
	var req composeRequest
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return composeRequest{}, errInvalidComposePayload
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return composeRequest{}, errInvalidComposePayload
		}
		req = composeRequest{
			Dominant:      r.PostFormValue("dominant"),
			Secondary:     r.PostFormValue("secondary"),
			Accent:        r.PostFormValue("accent"),
			Identifier:    r.PostFormValue("identifier"),
			Concentration: r.PostFormValue("concentration"),
			Occasion:      r.PostFormValue("occasion"),
			Intensity:     r.PostFormValue("intensity"),
		}
	}

	req.Dominant = strings.TrimSpace(req.Dominant)
	req.Identifier = strings.TrimSpace(req.Identifier)
	if req.Dominant == "" {
		return composeRequest{}, errMissingDominant
	}
	if req.Identifier == "" {
		return composeRequest{}, errMissingIdentifier
	}
	return req, nil
}

func buildComposeResponse(result engine.Result, card narrative.Card) composeResponse {
	resp := composeResponse{
		Card:            card,
		HeroFamily:      result.HeroFamily,
		IngredientCount: result.IngredientCount,
		Steeping:        result.Steeping,
		Concentration:   result.Concentration,
		Warnings:        result.Warnings,
		Notes:           result.Notes,
	}
	result.Formula.Walk(func(family string, layer catalog.Layer, pick *engine.Pick) {
		line := composeLine{
			Family:   family,
			Layer:    string(layer),
			Name:     pick.Name,
			Low:      pick.Percent.Low,
			High:     pick.Percent.High,
			Supplier: pick.Supplier,
		}
		resp.Lines = append(resp.Lines, line)
		if result.Hero != nil && family == result.HeroFamily && pick.Name == result.Hero.Name {
			hero := line
			resp.Hero = &hero
		}
	})
	return resp
}
