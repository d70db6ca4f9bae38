package handlers

import (
	"errors"
	"net/http"

	"github.com/Dosada05/zone-cup/services"
)

type ExportHandler struct {
	exportService services.ExportService
}

func NewExportHandler(es services.ExportService) *ExportHandler {
	return &ExportHandler{exportService: es}
}

// CreateExport godoc
// @Summary Выгрузить снимок турнира в R2
// @Tags exports
// @Produce json
// @Success 201 {object} storage.UploadResult
// @Failure 503 {object} map[string]string "Хранилище не настроено"
// @Security BearerAuth
// @Router /admin/exports [post]
func (h *ExportHandler) CreateExport(w http.ResponseWriter, r *http.Request) {
	result, err := h.exportService.ExportSnapshot(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"export": result}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListExports godoc
// @Summary Список выгруженных снимков
// @Tags exports
// @Produce json
// @Success 200 {array} storage.ObjectInfo
// @Security BearerAuth
// @Router /admin/exports [get]
func (h *ExportHandler) ListExports(w http.ResponseWriter, r *http.Request) {
	exports, err := h.exportService.ListExports(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"exports": exports}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteExport удаляет снимок по ключу из query-параметра key.
func (h *ExportHandler) DeleteExport(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		badRequestResponse(w, r, errors.New("query parameter key is required"))
		return
	}

	if err := h.exportService.DeleteExport(r.Context(), key); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
