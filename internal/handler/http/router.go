package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/qrmesai/qrmesai-backend-go/internal/handler/http/middleware"
	"github.com/qrmesai/qrmesai-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Department DepartmentHandler
	Schedule   ScheduleHandler
	PunchLog   PunchLogHandler
	Report     ReportHandler
}

func NewRouter(jwtService jwt.Service, h Handlers, frontendURL string, uploadsDir string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "qrmesai"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Stored selfies and avatars are served straight off disk.
	if uploadsDir != "" {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir)))
		r.Get("/uploads/*", fileServer.ServeHTTP)
	}

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/punches", func(r chi.Router) {
				r.Post("/", h.PunchLog.RecordPunch)
				r.Get("/my", h.PunchLog.GetMyPunches)
				r.Get("/my/status", h.PunchLog.GetMyStatus)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.PunchLog.ListPunches)
					r.Delete("/{id}", h.PunchLog.DeletePunch)
				})
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/employees", func(r chi.Router) {
					r.Post("/", h.Employee.CreateEmployee)
					r.Get("/", h.Employee.ListEmployees)
					r.Get("/{id}", h.Employee.GetEmployee)
					r.Put("/{id}", h.Employee.UpdateEmployee)
					r.Delete("/{id}", h.Employee.DeleteEmployee)
				})

				r.Route("/departments", func(r chi.Router) {
					r.Post("/", h.Department.CreateDepartment)
					r.Get("/", h.Department.ListDepartments)
					r.Get("/{id}", h.Department.GetDepartment)
					r.Put("/{id}", h.Department.UpdateDepartment)
					r.Delete("/{id}", h.Department.DeleteDepartment)

					r.Route("/{departmentID}/schedule", func(r chi.Router) {
						r.Put("/", h.Schedule.UpsertSchedule)
						r.Get("/", h.Schedule.GetSchedule)
						r.Delete("/", h.Schedule.DeleteSchedule)
					})
				})

				r.Get("/schedules", h.Schedule.ListSchedules)

				r.Route("/reports", func(r chi.Router) {
					r.Get("/work-hours", h.Report.GetWorkHours)
					r.Get("/irregularities", h.Report.GetIrregularities)
					r.Get("/irregularities/export", h.Report.ExportIrregularities)
				})
			})
		})
	})
	return r
}
