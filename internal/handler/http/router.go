package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/staffhub/staffhub-backend-go/internal/handler/http/middleware"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	Env         string
	FrontendURL string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	shiftHandler ShiftHandler,
	absenceHandler AbsenceHandler,
	masterHandler MasterHandler,
	rosterHandler RosterHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffhub-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", authHandler.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", authHandler.LoginWithGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", employeeHandler.GetByID)
					r.Put("/", employeeHandler.Update)
					r.Delete("/", employeeHandler.Delete)
					r.Get("/profile", employeeHandler.Profile)

					r.Route("/notes", func(r chi.Router) {
						r.Get("/", employeeHandler.ListNotes)
						r.Post("/", employeeHandler.CreateNote)
						r.Delete("/{noteID}", employeeHandler.DeleteNote)
					})

					r.Route("/roles", func(r chi.Router) {
						r.Get("/", employeeHandler.ListRoles)
						r.Put("/{roleID}", employeeHandler.AssignRole)
						r.Delete("/{roleID}", employeeHandler.RemoveRole)
					})

					r.Route("/shifts", func(r chi.Router) {
						r.Get("/", shiftHandler.ListMonth)
						r.Post("/", shiftHandler.Create)
						r.Get("/{shiftID}", shiftHandler.GetByID)
						r.Put("/{shiftID}", shiftHandler.Update)
						r.Delete("/{shiftID}", shiftHandler.Delete)
					})

					r.Route("/absences", func(r chi.Router) {
						r.Get("/", absenceHandler.List)
						r.Post("/", absenceHandler.Create)
						r.Get("/status", absenceHandler.Status)
						r.Delete("/{absenceID}", absenceHandler.Delete)
					})
				})
			})

			r.Route("/roles", func(r chi.Router) {
				r.Get("/", masterHandler.ListRoles)
				r.Get("/{roleID}", masterHandler.GetRole)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", masterHandler.CreateRole)
					r.Put("/{roleID}", masterHandler.UpdateRole)
					r.Delete("/{roleID}", masterHandler.DeleteRole)
				})
			})

			r.Route("/shift-models", func(r chi.Router) {
				r.Get("/", masterHandler.ListShiftModels)
				r.Get("/{modelID}", masterHandler.GetShiftModel)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", masterHandler.CreateShiftModel)
					r.Put("/{modelID}", masterHandler.UpdateShiftModel)
					r.Delete("/{modelID}", masterHandler.DeleteShiftModel)
				})
			})

			r.Route("/roster", func(r chi.Router) {
				r.Get("/{year}/{month}", rosterHandler.MonthView)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/{year}", rosterHandler.SeedYear)
				})
			})

			r.Get("/dashboard", dashboardHandler.Overview)
		})
	})
	return r
}
