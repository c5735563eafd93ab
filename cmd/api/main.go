package main

import (
	"fmt"
	"net/http"

	"github.com/staffhub/staffhub-backend-go/internal/config"
	appHTTP "github.com/staffhub/staffhub-backend-go/internal/handler/http"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/cron"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/jwt"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/oauth"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/timekit"
	"github.com/staffhub/staffhub-backend-go/internal/repository/postgresql"
	absenceService "github.com/staffhub/staffhub-backend-go/internal/service/absence"
	serviceAuth "github.com/staffhub/staffhub-backend-go/internal/service/auth"
	dashboardService "github.com/staffhub/staffhub-backend-go/internal/service/dashboard"
	employeeService "github.com/staffhub/staffhub-backend-go/internal/service/employee"
	"github.com/staffhub/staffhub-backend-go/internal/service/master"
	rosterService "github.com/staffhub/staffhub-backend-go/internal/service/roster"
	shiftService "github.com/staffhub/staffhub-backend-go/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	// Every calendar-day boundary and display string uses this location.
	timekit.Location = cfg.App.Timezone

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	roleRepo := postgresql.NewRoleRepository(db)
	shiftModelRepo := postgresql.NewShiftModelRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	absenceRepo := postgresql.NewAbsenceRepository(db)
	calendarDayRepo := postgresql.NewCalendarDayRepository(db)
	noteRepo := postgresql.NewNoteRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := serviceAuth.NewAuthService(db, userRepo, JWTService, refreshTokenRepo, GoogleService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, roleRepo, shiftRepo, absenceRepo)
	noteSvc := employeeService.NewNoteService(noteRepo, employeeRepo)
	roleSvc := master.NewRoleService(roleRepo, employeeRepo)
	shiftModelSvc := master.NewShiftModelService(shiftModelRepo)
	shiftSvc := shiftService.NewShiftService(shiftRepo, employeeRepo, roleRepo)
	absenceSvc := absenceService.NewAbsenceService(db, absenceRepo, employeeRepo)
	rosterSvc := rosterService.NewRosterService(calendarDayRepo, shiftRepo, absenceRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc, cfg.App.FrontendURL)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc, noteSvc, roleSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	absenceHandler := appHTTP.NewAbsenceHandler(absenceSvc)
	masterHandler := appHTTP.NewMasterHandler(roleSvc, shiftModelSvc)
	rosterHandler := appHTTP.NewRosterHandler(rosterSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	scheduler := cron.NewScheduler()
	cron.NewRosterJobs(rosterSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{Env: cfg.App.Env, FrontendURL: cfg.App.FrontendURL},
		JWTService,
		authHandler,
		employeeHandler,
		shiftHandler,
		absenceHandler,
		masterHandler,
		rosterHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
