package handler

import (
	"net/http"
	"storefront-checkout/internal/dto"
	"storefront-checkout/internal/service"

	"github.com/labstack/echo/v4"
)

type YocoHandler struct {
	yocoService service.YocoService
}

func NewYocoHandler(yocoService service.YocoService) *YocoHandler {
	return &YocoHandler{yocoService: yocoService}
}

func (h *YocoHandler) CreateSession(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}

	resp, err := h.yocoService.CreateSession(ctx, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}
