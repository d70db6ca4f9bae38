package handlers

import (
	"net/http"

	"github.com/Dosada05/zone-cup/services"
)

type BracketHandler struct {
	bracketService services.BracketService
}

func NewBracketHandler(bs services.BracketService) *BracketHandler {
	return &BracketHandler{bracketService: bs}
}

// GetBracket godoc
// @Summary Сетка плей-офф
// @Tags knockout
// @Description Жеребьёвка и результаты каждого раунда, стадия и чемпион.
// @Produce json
// @Success 200 {object} models.Bracket
// @Router /bracket [get]
func (h *BracketHandler) GetBracket(w http.ResponseWriter, r *http.Request) {
	bracket, err := h.bracketService.GetBracket(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, bracket, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DrawActiveRound godoc
// @Summary Жеребьёвка активного раунда
// @Tags knockout
// @Description Повторный вызов возвращает уже сохранённую жеребьёвку.
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} map[string]string "Групповой этап не завершён или недостаточно участников"
// @Security BearerAuth
// @Router /knockout/draw [post]
func (h *BracketHandler) DrawActiveRound(w http.ResponseWriter, r *http.Request) {
	draws, err := h.bracketService.DrawActiveRound(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	round := ""
	if len(draws) > 0 {
		round = draws[0].Phase
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"round": round, "draw": draws}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
