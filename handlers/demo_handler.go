package handlers

import (
	"net/http"

	"github.com/Dosada05/zone-cup/services"
)

// DemoHandler exposes the rehearsal data generators.
type DemoHandler struct {
	demoService services.DemoService
}

func NewDemoHandler(ds services.DemoService) *DemoHandler {
	return &DemoHandler{demoService: ds}
}

func (h *DemoHandler) GenerateTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.demoService.GenerateTeams(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"teams": teams}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *DemoHandler) GenerateGroupResults(w http.ResponseWriter, r *http.Request) {
	matches, err := h.demoService.GenerateGroupResults(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
