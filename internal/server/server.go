package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"memberdesk/internal/api"
	"memberdesk/internal/attendance"
	"memberdesk/internal/auth"
	"memberdesk/internal/config"
	"memberdesk/internal/logger"
	"memberdesk/internal/payment"
	"memberdesk/internal/plan"
	"memberdesk/internal/subscription"
	"memberdesk/internal/systemuser"
	"memberdesk/internal/tenant"
	"memberdesk/internal/user"
	"memberdesk/internal/userdetail"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
)

// Services is everything the HTTP layer dispatches to.
type Services struct {
	Tenants       tenant.Service
	Users         user.Service
	Plans         plan.Service
	Subscriptions subscription.Service
	Payments      payment.Service
	Attendance    attendance.Service
	SystemUsers   systemuser.Service
	UserDetails   userdetail.Service
}

type Server struct {
	router *gin.Engine
	http   *http.Server
	config *config.Config
}

func New(cfg *config.Config, db Pinger, svc Services) *Server {
	router := gin.New()
	router.Use(accessLog())
	router.Use(ginzap.RecoveryWithZap(logger.L(), true))
	router.Use(corsMiddleware(cfg.AllowedOrigins()))
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	router.GET("/health", Health(db))
	router.GET("/metrics", Metrics())
	SetupSwagger(router)
	router.Static("/uploads", cfg.UploadsDir)

	s := &Server{
		router: router,
		config: cfg,
	}
	s.registerRoutes(svc)
	return s
}

func (s *Server) registerRoutes(svc Services) {
	byPath := s.scope(tenant.PathScope(svc.Tenants))
	byHeader := s.scope(tenant.HeaderScope(svc.Tenants))

	// Registration and login stay open. A tenant record can only be read or
	// changed with a token issued for it, and the cross-tenant listing is
	// not served at all in auth mode.
	tenants := tenant.NewHandler(svc.Tenants)
	tg := s.router.Group("/tenants")
	{
		tg.POST("", tenants.Create)
		tg.POST("/validate", tenants.Validate)
		tg.POST("/refresh", tenants.Refresh)
		if !s.config.AuthEnabled {
			tg.GET("", tenants.List)
		}

		own := tg.Group("/:id", s.scope(tenant.ParamScope(svc.Tenants, "id"))...)
		own.GET("", tenants.Get)
		own.PUT("", tenants.Update)
		own.DELETE("", tenants.Delete)
	}

	uploads := api.LimitBody(uploadBodyLimit(s.config.UploadMaxBytes))

	users := user.NewHandler(svc.Users)
	ug := s.router.Group("/users/:tenantId", byPath...)
	{
		ug.GET("", users.List)
		ug.POST("", uploads, users.Create)
		ug.GET("/:userId", users.Get)
		ug.PUT("/:userId", users.Update)
		ug.DELETE("/:userId", users.Delete)
	}

	plans := plan.NewHandler(svc.Plans)
	pg := s.router.Group("/subscription-plans/:tenantId", byPath...)
	{
		pg.GET("", plans.List)
		pg.POST("", plans.Create)
		pg.GET("/:planId", plans.Get)
		pg.PUT("/:planId", plans.Update)
		pg.DELETE("/:planId", plans.Delete)
	}

	mappings := subscription.NewHandler(svc.Subscriptions)
	mg := s.router.Group("/user-subscription-plan-mappings/:tenantId", byPath...)
	{
		mg.GET("", mappings.List)
		mg.POST("", mappings.Create)
		mg.GET("/:id", mappings.Get)
		mg.GET("/:id/balance", mappings.Balance)
		mg.PUT("/:id", mappings.Update)
		mg.DELETE("/:id", mappings.Delete)
	}

	payments := payment.NewHandler(svc.Payments)
	s.router.POST("/payment-history/", append(byHeader, uploads, payments.Record)...)
	payg := s.router.Group("/payment-history/:tenantId", byPath...)
	{
		payg.GET("", payments.List)
		payg.GET("/export", payments.Export)
		payg.GET("/:paymentId", payments.Get)
		payg.PUT("/:paymentId", payments.Update)
		payg.DELETE("/:paymentId", payments.Delete)
	}

	att := attendance.NewHandler(svc.Attendance)
	s.router.POST("/attendance/", append(byHeader, att.Mark)...)
	s.router.GET("/attendance/:tenantId", append(byPath, att.List)...)

	staff := systemuser.NewHandler(svc.SystemUsers)
	s.router.POST("/system-users/", append(byHeader, staff.Create)...)
	sg := s.router.Group("/system-users/:tenantId", byPath...)
	{
		sg.GET("", staff.List)
		sg.GET("/:userId", staff.Get)
		sg.PUT("/:userId", staff.Update)
		sg.DELETE("/:userId", staff.Delete)
	}

	details := userdetail.NewHandler(svc.UserDetails)
	s.router.POST("/user-details/search/:tenantId", append(byPath, details.Search)...)
	s.router.GET("/user-details/detail/:tenantId/:id", append(byPath, details.Detail)...)
}

// scope returns the middleware chain for tenant-scoped routes. With auth
// enabled the bearer token is checked before the tenant lookup and must be
// issued for the resolved tenant.
func (s *Server) scope(resolve gin.HandlerFunc) []gin.HandlerFunc {
	if !s.config.AuthEnabled {
		return []gin.HandlerFunc{resolve}
	}
	return []gin.HandlerFunc{
		auth.AuthMiddleware(s.config.JWTSecret),
		resolve,
		auth.RequireTenant(),
	}
}

// uploadBodyLimit bounds a multipart request carrying up to two files of
// perFile bytes plus its text fields.
func uploadBodyLimit(perFile int64) int64 {
	return 2*perFile + formOverhead
}

const formOverhead = 1 << 20

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", tenant.HeaderName},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}

	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cors.New(cfg)
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cors.New(cfg)
	}

	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cors.New(cfg)
}
