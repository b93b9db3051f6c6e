package handler

import (
	"errors"
	"io"
	"net/http"
	"storefront-checkout/internal/dto"
	"storefront-checkout/internal/service"

	"github.com/labstack/echo/v4"
)

type SnapscanHandler struct {
	snapscanService service.SnapscanService
}

func NewSnapscanHandler(snapscanService service.SnapscanService) *SnapscanHandler {
	return &SnapscanHandler{snapscanService: snapscanService}
}

func (h *SnapscanHandler) CreateSession(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}

	resp, err := h.snapscanService.CreateSession(ctx, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// Webhook answers SnapScan with plain text; the raw body is needed for the signature check.
func (h *SnapscanHandler) Webhook(c echo.Context) error {
	ctx := c.Request().Context()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return c.String(httpErr.Code, "error")
		}
		return c.String(http.StatusBadRequest, "error")
	}

	err = h.snapscanService.HandleWebhook(ctx, c.Request().Header, body)
	if err != nil {
		var svcErr *service.ServiceError
		if errors.As(err, &svcErr) && svcErr.StatusCode == http.StatusUnauthorized {
			return c.String(http.StatusUnauthorized, "unauthorized")
		}
		return c.String(http.StatusInternalServerError, "error")
	}

	return c.String(http.StatusOK, "ok")
}
