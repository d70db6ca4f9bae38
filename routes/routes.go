package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Dosada05/zone-cup/docs" // регистрирует swagger-спецификацию
	"github.com/Dosada05/zone-cup/handlers"
	"github.com/Dosada05/zone-cup/middleware"
	"github.com/Dosada05/zone-cup/services"
)

type Handlers struct {
	Auth       *handlers.AuthHandler
	Team       *handlers.TeamHandler
	Tournament *handlers.TournamentHandler
	Match      *handlers.MatchHandler
	Bracket    *handlers.BracketHandler
	Admin      *handlers.AdminHandler
	Export     *handlers.ExportHandler
	Demo       *handlers.DemoHandler
	WebSocket  *handlers.WebSocketHandler
}

func SetupRoutes(router chi.Router, h Handlers, auth *middleware.Authenticator, allowedOrigins []string) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(middleware.Metrics)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Websocket живёт без таймаута запроса.
	router.Get("/ws", h.WebSocket.ServeWs)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(chiMiddleware.Timeout(30 * time.Second))

		r.Post("/auth/token", h.Auth.Login)

		// Публичные маршруты для просмотра турнира
		r.Get("/tournament", h.Tournament.GetOverview)
		r.Get("/tournament/stage", h.Tournament.GetStage)
		r.Get("/tournament/rules", h.Tournament.GetRules)
		r.Get("/tournament/champion", h.Tournament.GetChampion)
		r.Get("/zones/{zone}/standings", h.Tournament.GetStandings)
		r.Get("/zones/{zone}/fixtures", h.Tournament.GetPendingFixtures)
		r.Get("/teams", h.Team.ListTeams)
		r.Get("/teams/{teamID}", h.Team.GetTeamByID)
		r.Get("/matches", h.Match.ListMatches)
		r.Get("/matches/{matchID}", h.Match.GetMatchByID)
		r.Get("/bracket", h.Bracket.GetBracket)

		// Защищенные маршруты только для организатора
		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate)
			r.Use(middleware.Authorize(services.RoleOrganizer))

			r.Post("/teams", h.Team.CreateTeam)
			r.Put("/teams/{teamID}", h.Team.UpdateTeam)
			r.Delete("/teams/{teamID}", h.Team.DeleteTeam)
			r.Delete("/teams", h.Team.DeleteAllTeams)

			r.Post("/matches/group", h.Match.RecordGroupResult)
			r.Post("/knockout/draw", h.Bracket.DrawActiveRound)
			r.Post("/knockout/rounds/{round}/results", h.Match.RecordKnockoutResults)

			r.Route("/admin", func(r chi.Router) {
				r.Post("/teams/lock", h.Admin.LockTeams)
				r.Post("/teams/unlock", h.Admin.UnlockTeams)
				r.Post("/groups/lock", h.Admin.LockGroups)
				r.Post("/groups/unlock", h.Admin.UnlockGroups)
				r.Post("/reset/groups", h.Admin.ResetGroupResults)
				r.Post("/reset/knockout", h.Admin.ResetKnockout)
				r.Post("/reset/all", h.Admin.ResetAll)

				r.Post("/demo/teams", h.Demo.GenerateTeams)
				r.Post("/demo/results", h.Demo.GenerateGroupResults)

				r.Get("/exports", h.Export.ListExports)
				r.Post("/exports", h.Export.CreateExport)
				r.Delete("/exports", h.Export.DeleteExport)
			})
		})
	})
}
