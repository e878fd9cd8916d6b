package http

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/medixpro/medixpro/internal/auth"
	"github.com/medixpro/medixpro/internal/config"
	"github.com/medixpro/medixpro/internal/http/handlers"
	"github.com/medixpro/medixpro/internal/http/middlewares"
	"github.com/medixpro/medixpro/internal/observability"
	"github.com/medixpro/medixpro/internal/queue/redisclient"
	"github.com/medixpro/medixpro/internal/repo/postgres"
)

const maxBodyBytes = 1 << 20 // 1 MiB

type RouterDeps struct {
	Cfg   config.Config
	Log   *slog.Logger
	Pool  *pgxpool.Pool
	Queue *redisclient.Client
	Prom  *observability.Prom
	JWT   *auth.Manager
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// middleware

	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware(deps.Cfg.CORSAllowedOrigins))
	r.Use(middlewares.MaxBodyBytes(maxBodyBytes))
	r.Use(middlewares.RequireJSON())
	r.Use(otelgin.Middleware("medixpro-api"))

	if deps.Prom != nil {
		r.Use(deps.Prom.GinHandleMiddleware())
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// health

	pingDB := func(ctx context.Context) error {
		if deps.Pool == nil {
			return nil
		}
		return deps.Pool.Ping(ctx)
	}

	pingRedis := func(ctx context.Context) error {
		if deps.Queue == nil {
			return nil
		}
		return deps.Queue.Ping(ctx)
	}

	health := handlers.NewHealthHandler(pingDB, pingRedis)
	r.GET("/healthz", health.Healthz)
	r.GET("/readyz", health.Readyz)

	// wire up repositories

	usersRepo := postgres.NewUsersRepo(deps.Pool, deps.Prom)
	departmentsRepo := postgres.NewDepartmentsRepo(deps.Pool, deps.Prom)
	staffRepo := postgres.NewStaffRepo(deps.Pool, deps.Prom)
	patientsRepo := postgres.NewPatientsRepo(deps.Pool, deps.Prom)
	prescriptionsRepo := postgres.NewPrescriptionsRepo(deps.Pool, deps.Prom)
	medicinesRepo := postgres.NewMedicinesRepo(deps.Pool, deps.Prom)
	bloodUnitsRepo := postgres.NewBloodUnitsRepo(deps.Pool, deps.Prom)
	ambulancesRepo := postgres.NewAmbulancesRepo(deps.Pool, deps.Prom)
	emergencyCallsRepo := postgres.NewEmergencyCallsRepo(deps.Pool, deps.Prom)
	roomsRepo := postgres.NewRoomsRepo(deps.Pool, deps.Prom)
	allotmentsRepo := postgres.NewRoomAllotmentsRepo(deps.Pool, deps.Prom)

	var queue handlers.JobEnqueuer
	if deps.Queue != nil {
		queue = deps.Queue
	}

	limit := deps.Cfg.DefaultPageLimit

	// wire up handlers

	authHandler := handlers.NewAuthHandler(usersRepo, usersRepo, deps.JWT)
	departmentsHandler := handlers.NewDepartmentsHandler(departmentsRepo, limit)
	staffHandler := handlers.NewStaffHandler(staffRepo, limit)
	patientsHandler := handlers.NewPatientsHandler(patientsRepo, limit)
	prescriptionsHandler := handlers.NewPrescriptionsHandler(prescriptionsRepo, limit)
	medicinesHandler := handlers.NewMedicinesHandler(medicinesRepo, queue, limit)
	bloodBankHandler := handlers.NewBloodBankHandler(bloodUnitsRepo, limit)
	ambulancesHandler := handlers.NewAmbulancesHandler(ambulancesRepo, limit)
	emergencyCallsHandler := handlers.NewEmergencyCallsHandler(emergencyCallsRepo, queue, limit)
	roomsHandler := handlers.NewRoomsHandler(roomsRepo, limit)
	allotmentsHandler := handlers.NewRoomAllotmentsHandler(allotmentsRepo)

	authMw := middlewares.NewAuthMiddleware(deps.JWT)

	// login/register are brute-force targets, limit them by IP
	loginLimiter := middlewares.NewRateLimiter(10, time.Minute)

	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/login", loginLimiter.RateLimiterMiddleware(middlewares.KeyByIP), authHandler.Login)
		authGroup.POST("/register", loginLimiter.RateLimiterMiddleware(middlewares.KeyByIP), authHandler.Register)

		authed := authGroup.Group("")
		authed.Use(authMw.RequireAuth())
		authed.GET("/profile", authHandler.Profile)
		authed.PUT("/profile", authHandler.UpdateProfile)
		authed.POST("/change-password", authHandler.ChangePassword)
	}

	api := r.Group("/api")
	api.Use(authMw.RequireAuth())

	adminOnly := authMw.RequireRole("admin")

	api.GET("/departments", departmentsHandler.List)
	api.POST("/departments", departmentsHandler.Create)
	api.GET("/departments/:id", departmentsHandler.GetByID)
	api.PUT("/departments/:id", departmentsHandler.Update)
	api.DELETE("/departments/:id", adminOnly, departmentsHandler.Delete)

	api.GET("/staff", staffHandler.List)
	api.POST("/staff", staffHandler.Create)
	api.GET("/staff/:id", staffHandler.GetByID)
	api.PUT("/staff/:id", staffHandler.Update)
	api.DELETE("/staff/:id", adminOnly, staffHandler.Delete)

	api.GET("/patients", patientsHandler.List)
	api.POST("/patients", patientsHandler.Create)
	api.GET("/patients/:id", patientsHandler.GetByID)
	api.PUT("/patients/:id", patientsHandler.Update)
	api.DELETE("/patients/:id", adminOnly, patientsHandler.Delete)

	api.GET("/prescriptions", prescriptionsHandler.List)
	api.POST("/prescriptions", prescriptionsHandler.Create)
	api.GET("/prescriptions/:id", prescriptionsHandler.GetByID)
	api.PUT("/prescriptions/:id", prescriptionsHandler.Update)
	api.DELETE("/prescriptions/:id", adminOnly, prescriptionsHandler.Delete)

	api.GET("/medicines", medicinesHandler.List)
	api.POST("/medicines", medicinesHandler.Create)
	api.GET("/medicines/:id", medicinesHandler.GetByID)
	api.PUT("/medicines/:id", medicinesHandler.Update)
	api.DELETE("/medicines/:id", adminOnly, medicinesHandler.Delete)

	api.GET("/blood-bank", bloodBankHandler.List)
	api.POST("/blood-bank", bloodBankHandler.Create)
	api.GET("/blood-bank/:id", bloodBankHandler.GetByID)
	api.PUT("/blood-bank/:id", bloodBankHandler.Update)
	api.DELETE("/blood-bank/:id", adminOnly, bloodBankHandler.Delete)

	api.GET("/ambulances", ambulancesHandler.List)
	api.POST("/ambulances", ambulancesHandler.Create)
	api.GET("/ambulances/:id", ambulancesHandler.GetByID)
	api.PUT("/ambulances/:id", ambulancesHandler.Update)
	api.DELETE("/ambulances/:id", adminOnly, ambulancesHandler.Delete)

	api.GET("/emergency-calls", emergencyCallsHandler.List)
	api.POST("/emergency-calls", emergencyCallsHandler.Create)
	api.GET("/emergency-calls/:id", emergencyCallsHandler.GetByID)
	api.PUT("/emergency-calls/:id", emergencyCallsHandler.Update)
	api.PATCH("/emergency-calls/:id/status", emergencyCallsHandler.UpdateStatus)
	api.DELETE("/emergency-calls/:id", adminOnly, emergencyCallsHandler.Delete)

	api.GET("/rooms", roomsHandler.List)
	api.POST("/rooms", roomsHandler.Create)
	api.GET("/rooms/:id", roomsHandler.GetByID)
	api.PUT("/rooms/:id", roomsHandler.Update)
	api.DELETE("/rooms/:id", adminOnly, roomsHandler.Delete)

	api.GET("/room-allotments", allotmentsHandler.List)
	api.POST("/room-allotments", allotmentsHandler.Create)
	api.GET("/room-allotments/:id", allotmentsHandler.GetByID)
	api.PUT("/room-allotments/:id", allotmentsHandler.Update)
	api.DELETE("/room-allotments/:id", adminOnly, allotmentsHandler.Delete)

	return r
}
