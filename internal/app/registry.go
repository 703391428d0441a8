package app

import (
	"database/sql"

	"go-attendance/internal/attendance"
	"go-attendance/internal/auth"
	"go-attendance/internal/certificate"
	"go-attendance/internal/config"
	"go-attendance/internal/messaging/kafka"
	"go-attendance/internal/middleware"
	"go-attendance/internal/rbac"
	"go-attendance/internal/rbac/infra"
	"go-attendance/internal/report"
	"go-attendance/internal/shared/counter"
	"go-attendance/internal/student"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	certificateRepo := certificate.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	studentRepo := student.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer, logger)
	if err != nil {
		return err
	}
	guard := middleware.Guard{JWTSecret: cfg.Auth.JWTSecret, RBAC: rbacService}

	// --- Services ---
	reportService := report.NewService(attendanceRepo, studentRepo, rdb, cfg.Report.CacheTTL, logger)
	authService := auth.NewService(authRepo, auth.Config{
		JWTSecret:       cfg.Auth.JWTSecret,
		TeacherSecretID: cfg.Auth.TeacherSecretID,
		TokenTTL:        cfg.Auth.TokenTTL,
	}, logger)
	studentService := student.NewService(db, studentRepo, reportService, logger)
	attendanceService := attendance.NewServiceWithOutbox(db, attendanceRepo, outboxRepo, reportService, logger)
	certificateService := certificate.NewService(db, certificateRepo, studentRepo, reportService, counterRepo, outboxRepo, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, cfg.IsProduction(), logger)
	studentHandler := student.NewHandler(studentService, logger)
	attendanceHandler := attendance.NewHandler(attendanceService, logger)
	reportHandler := report.NewHandler(reportService, logger)
	certificateHandler := certificate.NewHandler(certificateService, logger)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, guard)
		student.RegisterRoutes(api, studentHandler, guard, logger)
		attendance.RegisterRoutes(api, attendanceHandler, guard, rdb, logger)
		report.RegisterRoutes(api, reportHandler, guard, logger)
		certificate.RegisterRoutes(api, certificateHandler, guard, logger)
		rbac.RegisterRoutes(api, rbacHandler, guard)
	}

	return nil
}
