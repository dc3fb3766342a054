package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/casarosa-rh/hr-backend-go/internal/config"
	appHTTP "github.com/casarosa-rh/hr-backend-go/internal/handler/http"
	"github.com/casarosa-rh/hr-backend-go/internal/pkg/database"
	"github.com/casarosa-rh/hr-backend-go/internal/pkg/jwt"
	"github.com/casarosa-rh/hr-backend-go/internal/pkg/storage"
	"github.com/casarosa-rh/hr-backend-go/internal/repository/postgresql"
	attendanceService "github.com/casarosa-rh/hr-backend-go/internal/service/attendance"
	auditService "github.com/casarosa-rh/hr-backend-go/internal/service/audit"
	authService "github.com/casarosa-rh/hr-backend-go/internal/service/auth"
	bonusService "github.com/casarosa-rh/hr-backend-go/internal/service/bonus"
	dashboardService "github.com/casarosa-rh/hr-backend-go/internal/service/dashboard"
	documentService "github.com/casarosa-rh/hr-backend-go/internal/service/document"
	employeeService "github.com/casarosa-rh/hr-backend-go/internal/service/employee"
	goalService "github.com/casarosa-rh/hr-backend-go/internal/service/goal"
	overtimeService "github.com/casarosa-rh/hr-backend-go/internal/service/overtime"
	recruitmentService "github.com/casarosa-rh/hr-backend-go/internal/service/recruitment"
	reportService "github.com/casarosa-rh/hr-backend-go/internal/service/report"
	vacationService "github.com/casarosa-rh/hr-backend-go/internal/service/vacation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	vacationRepo := postgresql.NewVacationRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	documentRepo := postgresql.NewDocumentRepository(db)
	recruitmentRepo := postgresql.NewRecruitmentRepository(db)
	goalRepo := postgresql.NewGoalRepository(db)
	bonusRepo := postgresql.NewBonusRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}

	auditSvc := auditService.NewService(auditRepo, nil)
	authSvc := authService.NewService(userRepo, employeeRepo, jwtService)
	employeeSvc := employeeService.NewService(employeeRepo, auditSvc)
	overtimeSvc := overtimeService.NewWorkflowService(overtimeRepo, employeeRepo, auditSvc, nil, cfg.Overtime)
	vacationSvc := vacationService.NewService(vacationRepo, employeeRepo, auditSvc)
	attendanceSvc := attendanceService.NewService(attendanceRepo, employeeRepo)
	documentSvc := documentService.NewService(documentRepo, fileStorage, auditSvc)
	recruitmentSvc := recruitmentService.NewService(recruitmentRepo, auditSvc)
	goalSvc := goalService.NewService(goalRepo, employeeRepo, auditSvc)
	bonusSvc := bonusService.NewService(bonusRepo, employeeRepo, auditSvc)
	dashboardSvc := dashboardService.NewService(employeeRepo, overtimeRepo, vacationRepo, cfg.Overtime)
	reportSvc := reportService.NewService(overtimeSvc)

	handlers := appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(authSvc, jwtService),
		Employee:    appHTTP.NewEmployeeHandler(employeeSvc),
		Overtime:    appHTTP.NewOvertimeHandler(overtimeSvc),
		Vacation:    appHTTP.NewVacationHandler(vacationSvc),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc),
		Document:    appHTTP.NewDocumentHandler(documentSvc),
		Recruitment: appHTTP.NewRecruitmentHandler(recruitmentSvc),
		Goal:        appHTTP.NewGoalHandler(goalSvc),
		Bonus:       appHTTP.NewBonusHandler(bonusSvc),
		Dashboard:   appHTTP.NewDashboardHandler(dashboardSvc),
		Report:      appHTTP.NewReportHandler(reportSvc),
		Audit:       appHTTP.NewAuditHandler(auditSvc),
	}

	router := appHTTP.NewRouter(jwtService, handlers, []string{cfg.App.FrontendURL})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
