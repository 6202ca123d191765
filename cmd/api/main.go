package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/rollcall-hq/rollcall-backend-go/internal/config"
	appHTTP "github.com/rollcall-hq/rollcall-backend-go/internal/handler/http"
	"github.com/rollcall-hq/rollcall-backend-go/internal/pkg/database"
	"github.com/rollcall-hq/rollcall-backend-go/internal/pkg/jwt"
	"github.com/rollcall-hq/rollcall-backend-go/internal/repository/postgresql"
	attendanceService "github.com/rollcall-hq/rollcall-backend-go/internal/service/attendance"
	authService "github.com/rollcall-hq/rollcall-backend-go/internal/service/auth"
	optionService "github.com/rollcall-hq/rollcall-backend-go/internal/service/option"
	reportService "github.com/rollcall-hq/rollcall-backend-go/internal/service/report"
	userService "github.com/rollcall-hq/rollcall-backend-go/internal/service/user"
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

	userRepo := postgresql.NewUserRepository(db)
	optionRepo := postgresql.NewOptionRepository(db)
	recordRepo := postgresql.NewAttendanceRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(db, userRepo, optionRepo, JWTService, jwtRepo)
	userSvc := userService.NewUserService(db, userRepo)
	optionSvc := optionService.NewOptionService(db, optionRepo, userRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, recordRepo, userRepo)
	reportSvc := reportService.NewReportService(userRepo, recordRepo, cfg.Report.CountMissingAsAbsent)

	// A fresh database gets the default registration vocabularies, all or
	// nothing.
	err = postgresql.WithTransaction(context.Background(), db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(context.Background(), "tx", tx)
		return optionSvc.SeedDefaults(txCtx)
	})
	if err != nil {
		log.Fatal("Failed to seed default options:", err)
	}

	authHandler := appHTTP.NewAuthHandler(authSvc, JWTService)
	userHandler := appHTTP.NewUserHandler(userSvc)
	optionHandler := appHTTP.NewOptionHandler(optionSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		userHandler,
		optionHandler,
		attendanceHandler,
		reportHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
