package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Dosada05/zone-cup/services"
)

type jsonResponse map[string]interface{}

func readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	maxBytes := 1_048_576 // 1MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return fmt.Errorf("body contains unknown key %s", fieldName)
		case errors.As(err, &maxBytesError):
			return fmt.Errorf("body must not be larger than %d bytes", maxBytes)
		case errors.As(err, &invalidUnmarshalError):
			panic(err) // ошибка программиста: передан не указатель
		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, data interface{}, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

func errorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	if err := writeJSON(w, status, jsonResponse{"error": message}, nil); err != nil {
		requestLogger(r).ErrorContext(r.Context(), "Error writing error JSON response", slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// requestLogger tags log records with the chi request id.
func requestLogger(r *http.Request) *slog.Logger {
	return slog.Default().With(
		slog.String("request_id", chiMiddleware.GetReqID(r.Context())),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)
}

func serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	requestLogger(r).ErrorContext(r.Context(), "Internal server error", slog.Any("error", err))
	errorResponse(w, r, http.StatusInternalServerError, "the server encountered a problem and could not process your request")
}

func badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	errorResponse(w, r, http.StatusBadRequest, err.Error())
}

// serviceErrorStatus: порядок важен только для ошибок, обёрнутых друг в друга.
var serviceErrorStatus = []struct {
	status int
	errs   []error
}{
	{http.StatusNotFound, []error{
		services.ErrNotFound, services.ErrTeamNotFound, services.ErrMatchNotFound,
		services.ErrUnknownZone, services.ErrUnknownRound,
	}},
	// Некорректные результаты матчей
	{http.StatusBadRequest, []error{
		services.ErrSameTeam, services.ErrDifferentZones,
		services.ErrKnockoutDrawNotAllowed, services.ErrResultsMismatch,
	}},
	// Конфликты с данными и состоянием турнира
	{http.StatusConflict, []error{
		services.ErrTeamNameConflict, services.ErrZoneFull,
		services.ErrRosterLocked, services.ErrRosterNotLocked,
		services.ErrGroupsLocked, services.ErrGroupsNotLocked,
		services.ErrGroupPhaseIncomplete, services.ErrZonesNotFull, services.ErrNotEnoughTeams,
		services.ErrInvalidStageTransition, services.ErrRoundNotActive, services.ErrDrawMissing,
		services.ErrTournamentCompleted, services.ErrInsufficientQualifiers,
		services.ErrUnsupportedTopology, services.ErrOddWinnerCount,
	}},
	{http.StatusUnauthorized, []error{services.ErrInvalidCredentials, services.ErrAuthenticationFailed}},
	{http.StatusForbidden, []error{services.ErrDemoToolsDisabled}},
	{http.StatusServiceUnavailable, []error{services.ErrExportDisabled}},
}

// mapServiceErrorToHTTP преобразует ошибки сервисного слоя в HTTP-ответы.
// ErrIntegrityViolation и всё непредвиденное уходит в 500.
func mapServiceErrorToHTTP(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		errorResponse(w, r, http.StatusUnprocessableEntity, validationErr.Fields)
		return
	}

	for _, group := range serviceErrorStatus {
		for _, target := range group.errs {
			if errors.Is(err, target) {
				errorResponse(w, r, group.status, err.Error())
				return
			}
		}
	}
	serverErrorResponse(w, r, err)
}

func getIDFromURL(r *http.Request, paramName string) (int, error) {
	idStr := chi.URLParam(r, paramName)
	if idStr == "" {
		return 0, fmt.Errorf("missing %s in URL path", paramName)
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s format: %q", paramName, idStr)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid %s value: %d", paramName, id)
	}
	return id, nil
}

// getNameFromURL returns a path parameter such as a zone or a round name ("Round of 16").
func getNameFromURL(r *http.Request, paramName string) (string, error) {
	raw := chi.URLParam(r, paramName)
	name, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("invalid %s: %q", paramName, raw)
	}
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("missing %s in URL path", paramName)
	}
	return name, nil
}
