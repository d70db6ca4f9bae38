package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Dosada05/zone-cup/services"
)

// AdminHandler exposes the organizer's stage transitions.
type AdminHandler struct {
	tournamentService services.TournamentService
	logger            *slog.Logger
}

func NewAdminHandler(ts services.TournamentService, logger *slog.Logger) *AdminHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AdminHandler{tournamentService: ts, logger: logger}
}

// transition runs op and answers with the resulting stage.
func (h *AdminHandler) transition(name string, op func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := op(r.Context()); err != nil {
			h.logger.InfoContext(r.Context(), "Stage transition refused", slog.String("action", name), slog.Any("error", err))
			mapServiceErrorToHTTP(w, r, err)
			return
		}

		stage, err := h.tournamentService.Stage(r.Context())
		if err != nil {
			mapServiceErrorToHTTP(w, r, err)
			return
		}
		if err := writeJSON(w, http.StatusOK, jsonResponse{"action": name, "stage": stage}, nil); err != nil {
			serverErrorResponse(w, r, err)
		}
	}
}

// LockTeams godoc
// @Summary Зафиксировать состав
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{} "Новая стадия"
// @Failure 409 {object} map[string]string "Зоны не заполнены"
// @Security BearerAuth
// @Router /admin/teams/lock [post]
func (h *AdminHandler) LockTeams(w http.ResponseWriter, r *http.Request) {
	h.transition("lock_teams", h.tournamentService.LockTeams)(w, r)
}

func (h *AdminHandler) UnlockTeams(w http.ResponseWriter, r *http.Request) {
	h.transition("unlock_teams", h.tournamentService.UnlockTeams)(w, r)
}

// LockGroups godoc
// @Summary Завершить групповой этап
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{} "Новая стадия"
// @Failure 409 {object} map[string]string "Остались несыгранные матчи"
// @Security BearerAuth
// @Router /admin/groups/lock [post]
func (h *AdminHandler) LockGroups(w http.ResponseWriter, r *http.Request) {
	h.transition("lock_groups", h.tournamentService.LockGroups)(w, r)
}

func (h *AdminHandler) UnlockGroups(w http.ResponseWriter, r *http.Request) {
	h.transition("unlock_groups", h.tournamentService.UnlockGroups)(w, r)
}

func (h *AdminHandler) ResetGroupResults(w http.ResponseWriter, r *http.Request) {
	h.transition("reset_groups", h.tournamentService.ResetGroupResults)(w, r)
}

func (h *AdminHandler) ResetKnockout(w http.ResponseWriter, r *http.Request) {
	h.transition("reset_knockout", h.tournamentService.ResetKnockout)(w, r)
}

func (h *AdminHandler) ResetAll(w http.ResponseWriter, r *http.Request) {
	h.transition("reset_all", h.tournamentService.ResetAll)(w, r)
}
