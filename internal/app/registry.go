package app

import (
	"github.com/priyanshu-101/cb-app-user/internal/attendance"
	"github.com/priyanshu-101/cb-app-user/internal/auth"
	"github.com/priyanshu-101/cb-app-user/internal/employee"
	"github.com/priyanshu-101/cb-app-user/internal/holiday"
	"github.com/priyanshu-101/cb-app-user/internal/leave"
	"github.com/priyanshu-101/cb-app-user/internal/middleware"
	"github.com/priyanshu-101/cb-app-user/internal/notice"
	"github.com/priyanshu-101/cb-app-user/internal/salary"
	"github.com/priyanshu-101/cb-app-user/internal/shared/filestore"
	"github.com/priyanshu-101/cb-app-user/internal/site"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EventPublisher is satisfied by *producer.Publisher.
type EventPublisher interface {
	attendance.EventPublisher
	leave.EventPublisher
}

// Dependencies are the infrastructure handles the modules share. Redis and
// Events are optional.
type Dependencies struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Files  filestore.Store
	Events EventPublisher
	Logger *zap.Logger
}

func registerModules(router gin.IRouter, deps Dependencies) {
	log := deps.Logger

	// --- Repositories ---
	employeeRepo := employee.NewRepository(deps.DB)
	salaryRepo := salary.NewRepository(deps.DB)
	holidayRepo := holiday.NewRepository(deps.DB)
	noticeRepo := notice.NewRepository(deps.DB)
	siteRepo := site.NewRepository(deps.DB)
	leaveRepo := leave.NewRepository(deps.DB)
	attendanceRepo := attendance.NewRepository(deps.DB)

	// --- Services ---
	var (
		leavePublisher      leave.EventPublisher
		attendancePublisher attendance.EventPublisher
	)
	if deps.Events != nil {
		leavePublisher = deps.Events
		attendancePublisher = deps.Events
	}

	authService := auth.NewService(employeeRepo, log)
	employeeService := employee.NewService(employeeRepo, log)
	salaryService := salary.NewService(salaryRepo, log)
	holidayService := holiday.NewService(holidayRepo)
	noticeService := notice.NewService(noticeRepo)
	siteService := site.NewService(siteRepo, deps.Redis, log)
	leaveService := leave.NewServiceWithPublisher(leaveRepo, deps.Files, leavePublisher, log)
	attendanceService := attendance.NewServiceWithPublisher(attendanceRepo, leaveService, attendancePublisher, log)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, log)
	employeeHandler := employee.NewHandler(employeeService, log)
	salaryHandler := salary.NewHandler(salaryService, log)
	holidayHandler := holiday.NewHandler(holidayService)
	noticeHandler := notice.NewHandler(noticeService)
	siteHandler := site.NewHandler(siteService)
	leaveHandler := leave.NewHandler(leaveService, log)
	attendanceHandler := attendance.NewHandler(attendanceService, log)

	// --- Routes Registration ---
	var writeGuard []gin.HandlerFunc
	if deps.Redis != nil {
		writeGuard = append(writeGuard, middleware.Idempotency(deps.Redis, log))
	}

	auth.RegisterRoutes(router, authHandler)
	employee.RegisterRoutes(router, employeeHandler)
	salary.RegisterRoutes(router, salaryHandler)
	holiday.RegisterRoutes(router, holidayHandler)
	notice.RegisterRoutes(router, noticeHandler)
	site.RegisterRoutes(router, siteHandler)
	leave.RegisterRoutes(router, leaveHandler, writeGuard...)
	attendance.RegisterRoutes(router, attendanceHandler, writeGuard...)
}
