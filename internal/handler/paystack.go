package handler

import (
	"net/http"
	"storefront-checkout/internal/dto"
	"storefront-checkout/internal/service"

	"github.com/labstack/echo/v4"
)

type PaystackHandler struct {
	paystackService service.PaystackService
}

func NewPaystackHandler(paystackService service.PaystackService) *PaystackHandler {
	return &PaystackHandler{paystackService: paystackService}
}

// InitializeTransaction serves both /create-payment and /initialize-transaction.
func (h *PaystackHandler) InitializeTransaction(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.TransactionRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}

	resp, err := h.paystackService.InitializeTransaction(ctx, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSONBlob(http.StatusOK, resp)
}
