package handlers

import (
	"net/http"

	"github.com/Dosada05/zone-cup/models"
	"github.com/Dosada05/zone-cup/services"
)

type MatchHandler struct {
	matchService services.MatchService
}

func NewMatchHandler(ms services.MatchService) *MatchHandler {
	return &MatchHandler{matchService: ms}
}

type knockoutResultsRequest struct {
	Results []services.ResultInput `json:"results"`
}

// RecordGroupResult godoc
// @Summary Записать результат группового матча
// @Tags matches
// @Description Повторная запись того же матча исправляет счёт.
// @Accept json
// @Produce json
// @Param body body services.ResultInput true "Результат"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Команды из разных зон или одна и та же команда"
// @Failure 409 {object} map[string]string "Групповой этап закрыт"
// @Failure 422 {object} map[string]string "Ошибка валидации"
// @Security BearerAuth
// @Router /matches/group [post]
func (h *MatchHandler) RecordGroupResult(w http.ResponseWriter, r *http.Request) {
	var input services.ResultInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.RecordGroupResult(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RecordKnockoutResults godoc
// @Summary Записать результаты раунда плей-офф
// @Tags knockout
// @Description Результаты должны покрывать всю жеребьёвку раунда, ничьи запрещены.
// @Accept json
// @Produce json
// @Param round path string true "Раунд, например Semifinals"
// @Param body body knockoutResultsRequest true "Результаты"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Ничья или результаты не совпадают с жеребьёвкой"
// @Failure 409 {object} map[string]string "Раунд не активен или не разыгран"
// @Security BearerAuth
// @Router /knockout/rounds/{round}/results [post]
func (h *MatchHandler) RecordKnockoutResults(w http.ResponseWriter, r *http.Request) {
	round, err := getNameFromURL(r, "round")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input knockoutResultsRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	matches, err := h.matchService.RecordKnockoutResults(r.Context(), round, input.Results)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"round": round, "matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListMatches отдаёт матчи фазы: ?phase=Group (по умолчанию) или название раунда.
func (h *MatchHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
	phase := r.URL.Query().Get("phase")
	if phase == "" {
		phase = models.PhaseGroup
	}

	matches, err := h.matchService.ListByPhase(r.Context(), phase)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"phase": phase, "matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) GetMatchByID(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.GetMatch(r.Context(), matchID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
