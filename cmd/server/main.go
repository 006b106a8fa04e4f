package main

import (
	"fmt"
	"log"

	"edms/internal/config"
	"edms/internal/handler"
	"edms/internal/repository/postgres"
	"edms/internal/router"
	"edms/internal/service"
	s3storage "edms/internal/storage/s3"
)

// @title Employee Document Management API
// @version 1.0
// @description Backend for the employee document management system.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	employeeRepo := postgres.NewEmployeeRepo(db)
	documentRepo := postgres.NewDocumentRepo(db)
	categoryRepo := postgres.NewRequiredCategoryRepo(db)
	auditRepo := postgres.NewAuditLogRepo(db)
	statsRepo := postgres.NewStatsRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize services
	auditSvc := service.NewAuditService(auditRepo)
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	userSvc := service.NewUserService(userRepo)
	employeeSvc := service.NewEmployeeService(employeeRepo, categoryRepo)
	documentSvc := service.NewDocumentService(documentRepo, employeeRepo, s3Client, cfg.S3)
	categorySvc := service.NewCategoryService(categoryRepo, employeeRepo)
	statsSvc := service.NewStatsService(statsRepo)
	exportSvc := service.NewExportService(documentRepo, employeeRepo, categoryRepo)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc, userSvc, auditSvc)
	documentH := handler.NewDocumentHandler(documentSvc, auditSvc)
	employeeH := handler.NewEmployeeHandler(employeeSvc, auditSvc)
	categoryH := handler.NewCategoryHandler(categorySvc, auditSvc)
	userH := handler.NewUserHandler(userSvc, auditSvc)
	logH := handler.NewLogHandler(auditSvc)
	statsH := handler.NewStatsHandler(statsSvc)
	exportH := handler.NewExportHandler(exportSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, authSvc,
		authH, documentH, employeeH, categoryH, userH, logH, statsH, exportH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
