package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"shiftdesk/internal/config"
	"shiftdesk/internal/handler"
	"shiftdesk/internal/middleware"
	"shiftdesk/internal/repository"
	"shiftdesk/internal/service"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	ptoRepo := repository.NewPTORepository(db)
	lunchBreakRepo := repository.NewLunchBreakRepository(db)
	preferenceRepo := repository.NewPreferenceRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	userSvc := service.NewUserService(userRepo)
	shiftSvc := service.NewShiftService(shiftRepo, rdb)
	scheduleSvc := service.NewScheduleService(db, scheduleRepo, ptoRepo, userRepo, shiftRepo)
	ptoSvc := service.NewPTOService(ptoRepo, userRepo, scheduleRepo)
	lunchBreakSvc := service.NewLunchBreakService(lunchBreakRepo, scheduleRepo)
	preferenceSvc := service.NewPreferenceService(preferenceRepo, userRepo, shiftRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(userSvc)
	shiftsH := handler.NewShiftsHandler(shiftSvc)
	schedulesH := handler.NewSchedulesHandler(scheduleSvc)
	ptoH := handler.NewPTOHandler(ptoSvc)
	lunchBreaksH := handler.NewLunchBreaksHandler(lunchBreakSvc)
	preferencesH := handler.NewPreferencesHandler(preferenceSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Token issuance (public)
	token := r.Group("/api/token")
	{
		token.POST("", middleware.LoginRateLimiter(), authH.Login)
		token.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	api := r.Group("/api", jwtMW)
	{
		api.GET("/me", usersH.Me)

		// Users — read open to all authenticated, write admin-only
		api.GET("/users", usersH.List)
		api.GET("/users/:id", usersH.Get)
		users := api.Group("/users", middleware.RequireAdmin())
		{
			users.POST("", usersH.Create)
			users.PATCH("/:id", usersH.Update)
			users.DELETE("/:id", usersH.Delete)
		}

		// Shifts — shared reference data, same admin-or-read split
		api.GET("/shifts", shiftsH.List)
		api.GET("/shifts/:id", shiftsH.Get)
		shifts := api.Group("/shifts", middleware.RequireAdmin())
		{
			shifts.POST("", shiftsH.Create)
			shifts.PATCH("/:id", shiftsH.Update)
			shifts.DELETE("/:id", shiftsH.Delete)
		}

		// Owner-or-admin entities: the services enforce record-level access
		// and narrow list results to what the caller may see.
		schedules := api.Group("/schedules")
		{
			schedules.POST("", schedulesH.Create)
			schedules.GET("", schedulesH.List)
			schedules.GET("/:id", schedulesH.Get)
			schedules.PATCH("/:id", schedulesH.Update)
			schedules.DELETE("/:id", schedulesH.Delete)
		}

		pto := api.Group("/pto")
		{
			pto.POST("", ptoH.Create)
			pto.GET("", ptoH.List)
			pto.GET("/:id", ptoH.Get)
			pto.PATCH("/:id", ptoH.Update)
			pto.DELETE("/:id", ptoH.Delete)
		}

		lunchbreaks := api.Group("/lunchbreaks")
		{
			lunchbreaks.POST("", lunchBreaksH.Create)
			lunchbreaks.GET("", lunchBreaksH.List)
			lunchbreaks.GET("/:id", lunchBreaksH.Get)
			lunchbreaks.PATCH("/:id", lunchBreaksH.Update)
			lunchbreaks.DELETE("/:id", lunchBreaksH.Delete)
		}

		preferences := api.Group("/preferences")
		{
			preferences.POST("", preferencesH.Create)
			preferences.GET("", preferencesH.List)
			preferences.GET("/:id", preferencesH.Get)
			preferences.PATCH("/:id", preferencesH.Update)
			preferences.DELETE("/:id", preferencesH.Delete)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
