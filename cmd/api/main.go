package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/workforce-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/workforce-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/workforce-backend-go/internal/repository/postgresql"
	dailyReportService "github.com/cmlabs-hris/workforce-backend-go/internal/service/dailyreport"
	employeeService "github.com/cmlabs-hris/workforce-backend-go/internal/service/employee"
	"github.com/cmlabs-hris/workforce-backend-go/internal/service/master"
	rosterService "github.com/cmlabs-hris/workforce-backend-go/internal/service/roster"
	scheduleService "github.com/cmlabs-hris/workforce-backend-go/internal/service/schedule"
	timesheetService "github.com/cmlabs-hris/workforce-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	shiftTypeRepo := postgresql.NewShiftTypeRepository(db)
	workScheduleRepo := postgresql.NewWorkScheduleRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	rosterRepo := postgresql.NewRosterRepository(db)
	standardTimesheetRepo := postgresql.NewStandardTimesheetRepository(db)
	workOrderEntryRepo := postgresql.NewWorkOrderEntryRepository(db)
	dailyReportRepo := postgresql.NewDailyReportRepository(db)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "workforce-backend"),
	)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	shiftTypeSvc := master.NewShiftTypeService(shiftTypeRepo)
	scheduleSvc := scheduleService.NewScheduleService(workScheduleRepo, shiftTypeRepo)
	rosterSvc := rosterService.NewRosterService(rosterRepo, workScheduleRepo, shiftTypeRepo, employeeRepo)
	calendarSvc := timesheetService.NewCalendarService(
		rosterRepo,
		standardTimesheetRepo,
		workOrderEntryRepo,
		cfg.Org.WorkingDays,
		logger,
	)
	dailyReportSvc := dailyReportService.NewDailyReportService(dailyReportRepo, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)

	masterHandler := appHTTP.NewMasterHandler(shiftTypeSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	rosterHandler := appHTTP.NewRosterHandler(rosterSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(calendarSvc)
	dailyReportHandler := appHTTP.NewDailyReportHandler(dailyReportSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	router := appHTTP.NewRouter(
		JWTService,
		masterHandler,
		scheduleHandler,
		rosterHandler,
		timesheetHandler,
		dailyReportHandler,
		employeeHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
