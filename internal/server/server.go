package server

import (
	"context"
	"net/http"
	"storefront-checkout/internal/handler"
	"storefront-checkout/internal/metrics"
	appmiddleware "storefront-checkout/internal/middleware"
	"storefront-checkout/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// webhookBodyLimit caps the unauthenticated webhook body read before signature checks.
const webhookBodyLimit = "1M"

type Server struct {
	echo            *echo.Echo
	yocoHandler     *handler.YocoHandler
	snapscanHandler *handler.SnapscanHandler
	paystackHandler *handler.PaystackHandler
}

func NewServer(
	yocoService service.YocoService,
	snapscanService service.SnapscanService,
	paystackService service.PaystackService,
	logger *zap.Logger,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(appmiddleware.RequestLogger(logger))
	e.Use(appmiddleware.Metrics())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:            e,
		yocoHandler:     handler.NewYocoHandler(yocoService),
		snapscanHandler: handler.NewSnapscanHandler(snapscanService),
		paystackHandler: handler.NewPaystackHandler(paystackService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.echo.GET("/api/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	s.echo.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	// -------- checkout sessions --------
	s.echo.POST("/create-yoco-session", s.yocoHandler.CreateSession)
	s.echo.POST("/create-snapscan-session", s.snapscanHandler.CreateSession)

	// -------- paystack: both paths initialize a transaction --------
	s.echo.POST("/create-payment", s.paystackHandler.InitializeTransaction)
	s.echo.POST("/initialize-transaction", s.paystackHandler.InitializeTransaction)

	// -------- webhooks --------
	s.echo.POST("/snapscan-webhook", s.snapscanHandler.Webhook, middleware.BodyLimit(webhookBodyLimit))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

// Shutdown stops accepting connections and waits for in-flight requests until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
