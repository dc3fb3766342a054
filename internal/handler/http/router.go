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

	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
	"github.com/casarosa-rh/hr-backend-go/internal/handler/http/middleware"
	"github.com/casarosa-rh/hr-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth        AuthHandler
	Employee    EmployeeHandler
	Overtime    OvertimeHandler
	Vacation    VacationHandler
	Attendance  AttendanceHandler
	Document    DocumentHandler
	Recruitment RecruitmentHandler
	Goal        GoalHandler
	Bonus       BonusHandler
	Dashboard   DashboardHandler
	Report      ReportHandler
	Audit       AuditHandler
}

func NewRouter(jwtService jwt.Service, h Handlers, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/me", h.Auth.Me)

			r.Get("/dashboard", h.Dashboard.Summary)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Deactivate)
				})
			})

			r.Route("/overtime", func(r chi.Router) {
				r.Get("/", h.Overtime.List)
				r.Post("/", h.Overtime.Create)
				r.Get("/{id}", h.Overtime.Get)
				r.Post("/{id}/acknowledge", h.Overtime.Acknowledge)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRoles(user.RoleADM, user.RoleRH, user.RoleGestor))
					r.Post("/{id}/decide", h.Overtime.Decide)
					r.Post("/{id}/execute", h.Overtime.Execute)
					r.Post("/mass-approve", h.Overtime.MassApprove)
					r.Post("/mass-adjust", h.Overtime.MassAdjust)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/payroll", h.Overtime.SendToPayroll)
				})
			})

			r.Route("/vacations", func(r chi.Router) {
				r.Get("/", h.Vacation.List)
				r.Post("/", h.Vacation.Create)
				r.Get("/balance", h.Vacation.Balance)
				r.Get("/{id}", h.Vacation.Get)
				r.Post("/{id}/cancel", h.Vacation.Cancel)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRoles(user.RoleADM, user.RoleRH, user.RoleGestor))
					r.Post("/{id}/decide", h.Vacation.Decide)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.Attendance.List)
				r.Get("/totals", h.Attendance.MonthlyTotals)
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/clock-out", h.Attendance.ClockOut)
			})

			r.Route("/documents", func(r chi.Router) {
				r.Get("/", h.Document.List)
				r.Post("/", h.Document.Upload)
				r.Get("/{id}", h.Document.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Delete("/{id}", h.Document.Delete)
				})
			})

			r.Route("/recruitment", func(r chi.Router) {
				r.Use(middleware.RequireRoles(user.RoleADM, user.RoleRH, user.RoleGestor))

				r.Route("/openings", func(r chi.Router) {
					r.Get("/", h.Recruitment.ListOpenings)
					r.Get("/{id}/candidates", h.Recruitment.ListCandidates)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireHR)
						r.Post("/", h.Recruitment.CreateOpening)
						r.Post("/{id}/close", h.Recruitment.CloseOpening)
						r.Post("/{id}/candidates", h.Recruitment.AddCandidate)
					})
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/candidates/{candidateID}/advance", h.Recruitment.AdvanceCandidate)
				})
			})

			r.Route("/goals", func(r chi.Router) {
				r.Get("/", h.Goal.List)
				r.Post("/", h.Goal.Create)
				r.Put("/{id}/progress", h.Goal.UpdateProgress)
				r.Post("/{id}/complete", h.Goal.Complete)
				r.Post("/{id}/cancel", h.Goal.Cancel)
			})

			r.Route("/bonuses", func(r chi.Router) {
				r.Get("/", h.Bonus.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/", h.Bonus.Create)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRoles(user.RoleADM))
					r.Post("/{id}/decide", h.Bonus.Decide)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequireHR)
				r.Get("/overtime.csv", h.Report.OvertimeCSV)
				r.Get("/overtime.xlsx", h.Report.OvertimeWorkbook)
			})

			r.Route("/audit", func(r chi.Router) {
				r.Use(middleware.RequireRoles(user.RoleADM))
				r.Get("/", h.Audit.List)
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	return r
}
