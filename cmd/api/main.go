package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/proodentit/tolon-attendance/internal/config"
	domainAttendance "github.com/proodentit/tolon-attendance/internal/domain/attendance"
	"github.com/proodentit/tolon-attendance/internal/domain/staff"
	"github.com/proodentit/tolon-attendance/internal/domain/zone"
	appHTTP "github.com/proodentit/tolon-attendance/internal/handler/http"
	"github.com/proodentit/tolon-attendance/internal/pkg/compreface"
	"github.com/proodentit/tolon-attendance/internal/pkg/database"
	"github.com/proodentit/tolon-attendance/internal/pkg/jwt"
	"github.com/proodentit/tolon-attendance/internal/repository/postgresql"
	"github.com/proodentit/tolon-attendance/internal/repository/sheets"
	attendanceService "github.com/proodentit/tolon-attendance/internal/service/attendance"
	recognitionService "github.com/proodentit/tolon-attendance/internal/service/recognition"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var (
		zoneRepo  zone.Repository
		directory staff.Directory
		ledger    domainAttendance.Ledger
	)

	switch cfg.Store.Backend {
	case "sheets":
		client, err := sheets.NewClient(context.Background(), cfg.Sheets.ServiceAccountEmail, cfg.Sheets.PrivateKey, cfg.App.RequestTimeout)
		if err != nil {
			log.Fatal("Failed to initialize sheets client: ", err)
		}
		zoneRepo = sheets.NewZoneRepository(client, cfg.Sheets.StaffSheetID, cfg.Sheets.ZoneCacheTTL)
		directory = sheets.NewStaffDirectory(client, cfg.Sheets.StaffSheetID)
		ledger = sheets.NewAttendanceLedger(client, cfg.Sheets.AttendanceSheetID)
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Failed to connect to database: ", err)
		}
		zoneRepo = postgresql.NewZoneRepository(db)
		directory = postgresql.NewStaffDirectory(db)
		ledger = postgresql.NewAttendanceLedger(db)
	default:
		log.Fatal("Unsupported store backend: ", cfg.Store.Backend)
	}

	comprefaceClient := compreface.NewClient(cfg.CompreFace.URL, cfg.CompreFace.APIKey, cfg.App.RequestTimeout)
	JWTService := jwt.NewJWTService(cfg.JWT.Secret)

	recognitionSvc := recognitionService.NewRecognitionService(comprefaceClient, cfg.CompreFace.Threshold)
	attendanceSvc := attendanceService.NewAttendanceService(zoneRepo, directory, ledger, recognitionSvc, cfg.App.RequestTimeout)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	recognitionHandler := appHTTP.NewRecognitionHandler(comprefaceClient)

	router := appHTTP.NewRouter(
		JWTService,
		attendanceHandler,
		recognitionHandler,
		cfg.App.AllowedOrigins,
		cfg.App.Env,
		cfg.App.RequestTimeout,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{
		Addr:              port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		// Handlers are bounded by the request-timeout middleware; the write
		// deadline leaves headroom to flush the response.
		WriteTimeout: cfg.App.RequestTimeout + 5*time.Second,
	}

	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := server.ListenAndServe(); err != nil {
		fmt.Println("Server error:", err)
	}
}
