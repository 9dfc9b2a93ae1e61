package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"sitekhata/internal/config"
	"sitekhata/internal/database"
	"sitekhata/internal/handlers"
	"sitekhata/internal/logger"
	"sitekhata/internal/middleware"
	"sitekhata/internal/services"
	"sitekhata/internal/validator"

	_ "sitekhata/internal/docs" // Import swagger docs
)

// @title           Sitekhata API
// @version         1.0
// @description     Sitekhata is a single-project construction finance tracker: partner incomes, expenses, vendor directory, labour attendance and wages, backups, and reports.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Open the local record store
	dbManager, err := database.NewManager(appConfig.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open record store: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	incomeService := services.NewIncomeService(db)
	expenseService := services.NewExpenseService(db)
	vendorService := services.NewVendorService(db)
	labourService := services.NewLabourService(db)
	attendanceService := services.NewAttendanceService(db)
	paymentService := services.NewPaymentService(db)
	settingsService := services.NewSettingsService(db)
	reportService := services.NewReportService(db, settingsService)
	snapshotService := services.NewSnapshotService(db)
	exportService := services.NewExportService(db, settingsService)
	syncService := services.NewSyncService(db, settingsService, appConfig.SyncTimeout)

	// Initialize handlers
	incomeHandler := handlers.NewIncomeHandler(incomeService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	vendorHandler := handlers.NewVendorHandler(vendorService)
	labourHandler := handlers.NewLabourHandler(labourService, reportService)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	dashboardHandler := handlers.NewDashboardHandler(reportService)
	snapshotHandler := handlers.NewSnapshotHandler(snapshotService)
	reportHandler := handlers.NewReportHandler(exportService)
	syncHandler := handlers.NewSyncHandler(syncService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Income routes
	incomes := v1.Group("/incomes")
	incomes.POST("", incomeHandler.CreateIncome)
	incomes.GET("", incomeHandler.GetIncomes)
	incomes.GET("/:id", incomeHandler.GetIncome)
	incomes.PUT("/:id", incomeHandler.UpdateIncome)
	incomes.DELETE("/:id", incomeHandler.DeleteIncome)

	// Expense routes
	expenses := v1.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.GetExpenses)
	expenses.GET("/:id", expenseHandler.GetExpense)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	// Vendor routes
	vendors := v1.Group("/vendors")
	vendors.POST("", vendorHandler.CreateVendor)
	vendors.GET("", vendorHandler.GetVendors)
	vendors.GET("/:id", vendorHandler.GetVendor)
	vendors.PUT("/:id", vendorHandler.UpdateVendor)
	vendors.DELETE("/:id", vendorHandler.DeleteVendor)

	// Labour routes
	labours := v1.Group("/labours")
	labours.POST("", labourHandler.CreateLabour)
	labours.GET("", labourHandler.GetLabours)
	labours.GET("/stats", labourHandler.GetLabourStats)
	labours.GET("/:id", labourHandler.GetLabour)
	labours.PUT("/:id", labourHandler.UpdateLabour)
	labours.DELETE("/:id", labourHandler.DeleteLabour)

	// Attendance routes
	attendance := v1.Group("/attendance")
	attendance.POST("", attendanceHandler.MarkAttendance)
	attendance.POST("/bulk", attendanceHandler.MarkAllPresent)
	attendance.GET("", attendanceHandler.GetAttendance)
	attendance.PUT("/:id", attendanceHandler.UpdateAttendance)
	attendance.DELETE("/:id", attendanceHandler.DeleteAttendance)

	// Payment routes
	payments := v1.Group("/payments")
	payments.POST("", paymentHandler.CreatePayment)
	payments.GET("", paymentHandler.GetPayments)
	payments.GET("/:id", paymentHandler.GetPayment)
	payments.PUT("/:id", paymentHandler.UpdatePayment)
	payments.DELETE("/:id", paymentHandler.DeletePayment)

	// Derived views
	v1.GET("/dashboard", dashboardHandler.GetDashboard)
	v1.GET("/ledger", dashboardHandler.GetLedger)

	// Settings
	v1.GET("/settings", settingsHandler.GetSettings)
	v1.PUT("/settings", settingsHandler.UpdateSettings)

	// Backup and restore
	v1.GET("/snapshot", snapshotHandler.ExportSnapshot)
	v1.POST("/snapshot", snapshotHandler.ImportSnapshot)
	v1.DELETE("/snapshot", snapshotHandler.ResetStore)

	// Report downloads
	reports := v1.Group("/reports")
	reports.GET("/csv", reportHandler.DownloadCSV)
	reports.GET("/xlsx", reportHandler.DownloadXLSX)

	// Sheet sync
	v1.POST("/sync", syncHandler.Push)

	log.Infof("Starting Sitekhata backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
