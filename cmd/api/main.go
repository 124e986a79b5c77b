package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/qrmesai/qrmesai-backend-go/internal/config"
	appHTTP "github.com/qrmesai/qrmesai-backend-go/internal/handler/http"
	"github.com/qrmesai/qrmesai-backend-go/internal/pkg/cron"
	"github.com/qrmesai/qrmesai-backend-go/internal/pkg/database"
	"github.com/qrmesai/qrmesai-backend-go/internal/pkg/jwt"
	"github.com/qrmesai/qrmesai-backend-go/internal/pkg/storage"
	"github.com/qrmesai/qrmesai-backend-go/internal/repository/postgresql"
	authService "github.com/qrmesai/qrmesai-backend-go/internal/service/auth"
	departmentService "github.com/qrmesai/qrmesai-backend-go/internal/service/department"
	employeeService "github.com/qrmesai/qrmesai-backend-go/internal/service/employee"
	"github.com/qrmesai/qrmesai-backend-go/internal/service/file"
	punchlogService "github.com/qrmesai/qrmesai-backend-go/internal/service/punchlog"
	reportService "github.com/qrmesai/qrmesai-backend-go/internal/service/report"
	scheduleService "github.com/qrmesai/qrmesai-backend-go/internal/service/schedule"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	workScheduleRepo := postgresql.NewWorkScheduleRepository(db)
	punchLogRepo := postgresql.NewPunchLogRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileService := file.NewFileService(fileStorage)
	authSvc := authService.NewAuthService(employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, departmentRepo, fileService)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	scheduleSvc := scheduleService.NewWorkScheduleService(workScheduleRepo, departmentRepo)
	punchSvc := punchlogService.NewPunchLogService(punchLogRepo, fileService)
	reportSvc := reportService.NewReportService(employeeRepo, departmentRepo, workScheduleRepo, punchLogRepo)

	scheduler := cron.NewScheduler()
	cron.NewIrregularityJobs(employeeRepo, departmentRepo, workScheduleRepo, punchLogRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Department: appHTTP.NewDepartmentHandler(departmentSvc),
		Schedule:   appHTTP.NewScheduleHandler(scheduleSvc),
		PunchLog:   appHTTP.NewPunchLogHandler(punchSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	}, cfg.App.FrontendURL, cfg.Storage.BasePath)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
