package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/attendly/hr-console-go/internal/config"
	appHTTP "github.com/attendly/hr-console-go/internal/handler/http"
	"github.com/attendly/hr-console-go/internal/pkg/database"
	"github.com/attendly/hr-console-go/internal/pkg/jwt"
	"github.com/attendly/hr-console-go/internal/repository/postgresql"
	attendanceService "github.com/attendly/hr-console-go/internal/service/attendance"
	authService "github.com/attendly/hr-console-go/internal/service/auth"
	dashboardService "github.com/attendly/hr-console-go/internal/service/dashboard"
	employeeService "github.com/attendly/hr-console-go/internal/service/employee"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	if err := database.Migrate(cfg.MigrateURL()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	profileRepo := postgresql.NewProfileRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	AuthService := authService.NewAuthService(profileRepo, JWTService)
	EmployeeService := employeeService.NewEmployeeService(db, employeeRepo, attendanceRepo)
	AttendanceService := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	DashboardService := dashboardService.NewDashboardService(dashboardRepo, cfg.App.Timezone)

	authHandler := appHTTP.NewAuthHandler(JWTService, AuthService)
	employeeHandler := appHTTP.NewEmployeeHandler(EmployeeService)
	attendanceHandler := appHTTP.NewAttendanceHandler(AttendanceService)
	dashboardHandler := appHTTP.NewDashboardHandler(DashboardService)

	router := appHTTP.NewRouter(cfg, JWTService, authHandler, employeeHandler, attendanceHandler, dashboardHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server running on port", cfg.App.Port)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server failed:", err)
	}
}
