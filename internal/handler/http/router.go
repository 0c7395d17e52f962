package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/workforce-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	masterHandler MasterHandler,
	scheduleHandler ScheduleHandler,
	rosterHandler RosterHandler,
	timesheetHandler TimesheetHandler,
	dailyReportHandler DailyReportHandler,
	employeeHandler EmployeeHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforce-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
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
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/shift-types", func(r chi.Router) {
				r.Post("/", masterHandler.CreateShiftType)
				r.Get("/", masterHandler.ListShiftTypes)
				r.Get("/{id}", masterHandler.GetShiftType)
				r.Put("/{id}", masterHandler.UpdateShiftType)
				r.Delete("/{id}", masterHandler.DeleteShiftType)
			})

			r.Route("/work-schedules", func(r chi.Router) {
				r.Post("/", scheduleHandler.CreateWorkSchedule)
				r.Get("/", scheduleHandler.ListWorkSchedules)
				r.Get("/{id}", scheduleHandler.GetWorkSchedule)
				r.Put("/{id}", scheduleHandler.UpdateWorkSchedule)
				r.Delete("/{id}", scheduleHandler.DeleteWorkSchedule)
			})

			r.Route("/rosters", func(r chi.Router) {
				r.Post("/generate", rosterHandler.Generate)
				r.Get("/{employeeID}", rosterHandler.ListEntries)
				r.Put("/{employeeID}/{date}", rosterHandler.OverrideEntry)
			})

			r.Route("/timesheets", func(r chi.Router) {
				r.Get("/{employeeID}/calendar", timesheetHandler.GetCalendar)
			})

			r.Route("/daily-reports", func(r chi.Router) {
				r.Post("/", dailyReportHandler.Create)
				r.Get("/{id}", dailyReportHandler.Get)
				r.Put("/{id}", dailyReportHandler.Update)
				r.Post("/{id}/submit", dailyReportHandler.Submit)
				r.Post("/{id}/approve", dailyReportHandler.Approve)
				r.Post("/{id}/reject", dailyReportHandler.Reject)
				r.Get("/by-date/{employeeID}/{date}", dailyReportHandler.GetByEmployeeAndDate)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.Get)
			})
		})
	})
	return r
}
