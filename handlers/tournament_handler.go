package handlers

import (
	"net/http"

	"github.com/Dosada05/zone-cup/services"
)

type TournamentHandler struct {
	tournamentService services.TournamentService
}

func NewTournamentHandler(ts services.TournamentService) *TournamentHandler {
	return &TournamentHandler{tournamentService: ts}
}

// GetOverview godoc
// @Summary Сводка турнира
// @Tags tournament
// @Description Стадия, таблицы и оставшиеся матчи всех зон, порядок раундов и чемпион.
// @Produce json
// @Success 200 {object} models.Overview
// @Failure 500 {object} map[string]string "Внутренняя ошибка сервера"
// @Router /tournament [get]
func (h *TournamentHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.tournamentService.Overview(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, overview, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetStage godoc
// @Summary Текущая стадия
// @Tags tournament
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /tournament/stage [get]
func (h *TournamentHandler) GetStage(w http.ResponseWriter, r *http.Request) {
	stage, err := h.tournamentService.Stage(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"stage": stage}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TournamentHandler) GetRules(w http.ResponseWriter, r *http.Request) {
	rules := h.tournamentService.Rules()
	response := jsonResponse{
		"zones":               rules.Zones,
		"qualifiers_per_zone": rules.QualifiersPerZone,
		"max_teams_per_zone":  rules.MaxTeamsPerZone,
		"require_full_zones":  rules.FullZonesRequired(),
		"demo_tools_enabled":  rules.DemoTools(),
		"rounds":              h.tournamentService.RoundSequence(),
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetStandings godoc
// @Summary Таблица зоны
// @Tags tournament
// @Produce json
// @Param zone path string true "Зона"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Зона не настроена"
// @Router /zones/{zone}/standings [get]
func (h *TournamentHandler) GetStandings(w http.ResponseWriter, r *http.Request) {
	zone, err := getNameFromURL(r, "zone")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	rows, err := h.tournamentService.Standings(r.Context(), zone)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"zone": zone, "standings": rows}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetPendingFixtures godoc
// @Summary Несыгранные матчи зоны
// @Tags tournament
// @Produce json
// @Param zone path string true "Зона"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Зона не настроена"
// @Router /zones/{zone}/fixtures [get]
func (h *TournamentHandler) GetPendingFixtures(w http.ResponseWriter, r *http.Request) {
	zone, err := getNameFromURL(r, "zone")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	fixtures, err := h.tournamentService.PendingFixtures(r.Context(), zone)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"zone": zone, "fixtures": fixtures}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TournamentHandler) GetChampion(w http.ResponseWriter, r *http.Request) {
	champion, err := h.tournamentService.Champion(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"champion": champion}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
