package server

import (
	"asaas-integration-service/internal/handler"
	custommiddleware "asaas-integration-service/internal/middleware"
	"asaas-integration-service/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo           *echo.Echo
	paymentHandler *handler.PaymentHandler
}

func NewServer(paymentService service.PaymentService) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	paymentHandler := handler.NewPaymentHandler(paymentService)

	s := &Server{
		echo:           e,
		paymentHandler: paymentHandler,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// status must always reflect a live check, so both payment endpoints
	// are served with caching disabled
	api := s.echo.Group("/api", custommiddleware.NoCacheMiddleware())
	api.POST("/create-customer-payment", s.paymentHandler.CreateCustomerPayment)
	api.GET("/check-payment-status", s.paymentHandler.CheckPaymentStatus)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
