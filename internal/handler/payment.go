package handler

import (
	"errors"
	"net/http"
	"strings"

	"asaas-integration-service/internal/checkout"
	"asaas-integration-service/internal/client"
	"asaas-integration-service/internal/dto"
	"asaas-integration-service/internal/service"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) CreateCustomerPayment(c echo.Context) error {
	ctx := c.Request().Context()

	var raw dto.CheckoutRequest
	if err := c.Bind(&raw); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "request body missing or malformed",
		})
	}

	req, err := checkout.Normalize(raw)
	if err != nil {
		var vErr *checkout.ValidationError
		if errors.As(err, &vErr) {
			log.WithField("missing", vErr.Missing).Error("checkout request rejected")
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   "missing required fields",
				Details: strings.Join(vErr.Missing, ", "),
			})
		}
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	}

	result, err := h.paymentService.CreatePixPayment(ctx, req)
	if err != nil {
		return h.paymentError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *PaymentHandler) CheckPaymentStatus(c echo.Context) error {
	ctx := c.Request().Context()

	paymentID := c.QueryParam("paymentId")
	if paymentID == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "paymentId query parameter is required",
		})
	}

	result, err := h.paymentService.CheckPaymentStatus(ctx, paymentID)
	if err != nil {
		return h.paymentError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// paymentError maps the service error taxonomy onto HTTP responses. The
// structured payload keeps upstream gateway detail where it exists.
func (h *PaymentHandler) paymentError(c echo.Context, err error) error {
	log.WithError(err).Error("payment operation failed")

	var gatewayErr *client.GatewayError
	var persistErr *service.PersistenceError

	switch {
	case errors.Is(err, service.ErrAPIKeyMissing):
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "API key not configured",
		})
	case errors.As(err, &gatewayErr):
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "payment gateway request failed",
			Details: gatewayErr.Body,
		})
	case errors.Is(err, service.ErrUnusableCharge):
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "payment gateway returned an unusable pix charge",
		})
	case errors.As(err, &persistErr):
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "failed to save payment data",
			Details: persistErr.Error(),
		})
	default:
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "payment processing failed",
			Details: err.Error(),
		})
	}
}
