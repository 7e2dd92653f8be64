package cmd

import (
	"context"
	"database/sql"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hallworks/ms-go-hall/app/auth"
	"github.com/hallworks/ms-go-hall/app/controller"
	"github.com/hallworks/ms-go-hall/app/entity"
	"github.com/hallworks/ms-go-hall/app/gateway"
	"github.com/hallworks/ms-go-hall/app/repository"
	"github.com/hallworks/ms-go-hall/app/service"
	"github.com/hallworks/ms-go-hall/app/types"
	"github.com/hallworks/ms-go-hall/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  "Start the Echo HTTP server exposing the hall management API.",
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, db, paymentService, cleanup := mustCreatePaymentService()
	defer cleanup()

	accountService := service.NewAccountService(repository.NewAccountRepository(db))
	foodService := service.NewFoodService(repository.NewFoodRepository(db))
	complaintService := service.NewComplaintService(repository.NewComplaintRepository(db))
	noticeService := service.NewNoticeService(repository.NewNoticeRepository(db))

	controllers := &httpControllers{
		system:    controller.NewSystemController(cfg.App.ServiceName),
		auth:      controller.NewAuthController(cfg.JWT),
		account:   controller.NewAccountController(accountService),
		food:      controller.NewFoodController(foodService),
		payment:   controller.NewPaymentController(paymentService, cfg.Payments),
		complaint: controller.NewComplaintController(complaintService),
		notice:    controller.NewNoticeController(noticeService),
	}

	e := setupHTTPServer(cfg, controllers)

	go func() {
		httpAddr := net.JoinHostPort(cfg.HTTP.Host, cfg.HTTP.Port)
		logrus.WithField("addr", httpAddr).Info("Starting HTTP server")
		if err := e.Start(httpAddr); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Warn("HTTP shutdown error")
	}

	logrus.Info("Server stopped")
}

type httpControllers struct {
	system    *controller.SystemController
	auth      *controller.AuthController
	account   *controller.AccountController
	food      *controller.FoodController
	payment   *controller.PaymentController
	complaint *controller.ComplaintController
	notice    *controller.NoticeController
}

func setupHTTPServer(cfg *config.Config, c *httpControllers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogRemoteIP:  true,
		LogLatency:   true,
		LogUserAgent: true,
		LogError:     true,
		HandleError:  true,
		LogRequestID: true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			fields := logrus.Fields{
				"remote_ip":  v.RemoteIP,
				"host":       v.Host,
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"latency_ns": v.Latency.Nanoseconds(),
				"user_agent": v.UserAgent,
			}
			entry := logrus.WithFields(fields)
			if v.Error != nil {
				entry = entry.WithError(v.Error)
			}
			entry.Info("http_request")
			return nil
		},
	}))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.App.CORSOrigins,
		AllowCredentials: true,
	}))

	e.GET("/", c.system.Root)
	e.GET("/health", c.system.Health)

	e.POST("/jwt", c.auth.IssueToken)
	e.POST("/logout", c.auth.Logout)

	e.POST("/users", c.account.CreateAccount)
	e.GET("/users", c.account.ListAccounts, requireRole(cfg.JWT, entity.AccountRoleManager))
	e.PATCH("/users/:id/role", c.account.UpdateAccountRole, requireRole(cfg.JWT, entity.AccountRoleManager))

	e.GET("/food", c.food.ListFood)
	e.POST("/food", c.food.CreateFood, requireRole(cfg.JWT, entity.AccountRoleManager))

	e.POST("/sslCommerce", c.payment.InitiatePayment)
	e.POST("/success-payment", c.payment.SuccessCallback)
	e.POST("/failure-payment", c.payment.FailureCallback)
	e.POST("/cancel-payment", c.payment.CancelCallback)
	e.GET("/find-food-id", c.payment.FindFoodByEmail)
	e.GET("/find-food-payment", c.payment.FindAllPayments, requireRole(cfg.JWT, entity.AccountRoleManager))

	e.GET("/complaints", c.complaint.ListComplaints)
	e.POST("/complaints", c.complaint.CreateComplaint)

	e.GET("/notice", c.notice.ListNotices)
	e.POST("/notice", c.notice.CreateNotice, requireRole(cfg.JWT, entity.AccountRoleManager))

	return e
}

// requireRole authenticates via the auth cookie, falling back to a bearer
// token, and then enforces the expected role claim.
func requireRole(jwtCfg config.JWTConfig, role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token := tokenFromRequest(ctx)
			if token == "" {
				return ctx.JSON(http.StatusUnauthorized, &types.ErrorResponse{Error: "authentication required"})
			}

			claims, err := auth.ParseAccessToken(jwtCfg, token)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, &types.ErrorResponse{Error: "invalid or expired token"})
			}
			if claims.Role != role {
				return ctx.JSON(http.StatusForbidden, &types.ErrorResponse{Error: "insufficient permissions"})
			}

			return next(ctx)
		}
	}
}

func tokenFromRequest(ctx echo.Context) string {
	if cookie, err := ctx.Cookie("token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	return ""
}

func mustCreatePaymentService() (*config.Config, *sql.DB, *service.PaymentService, func()) {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	if err := configureLogging(cfg); err != nil {
		logrus.WithError(err).Fatal("Failed to configure logging")
	}

	db, err := sql.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		logrus.WithError(err).Fatal("Failed to ping database")
	}

	paymentRepo := repository.NewPaymentRepository(db)
	eventRepo := repository.NewPaymentEventRepository(db)
	callbackRepo := repository.NewPaymentCallbackRepository(db)

	sslcommerzGateway := gateway.NewSSLCommerzGateway(gateway.SSLCommerzConfig{
		StoreID:         cfg.SSLCommerz.StoreID,
		StorePasswd:     cfg.SSLCommerz.StorePasswd,
		BaseURL:         cfg.SSLCommerz.BaseURL,
		HTTPTimeout:     cfg.SSLCommerz.HTTPTimeout,
		RetryAttempts:   cfg.SSLCommerz.RetryAttempts,
		VerifyCallbacks: cfg.SSLCommerz.VerifyCallbacks,
	})

	gatewayRegistry := gateway.NewRegistry(sslcommerzGateway)
	paymentService := service.NewPaymentService(
		paymentRepo,
		eventRepo,
		callbackRepo,
		gatewayRegistry,
		cfg.Payments,
		cfg.App.PublicBaseURL,
	)

	cleanup := func() {
		if err := db.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close database")
		}
	}

	return cfg, db, paymentService, cleanup
}
