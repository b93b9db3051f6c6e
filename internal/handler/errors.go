package handler

import (
	"errors"
	"net/http"
	"storefront-checkout/internal/dto"
	"storefront-checkout/internal/service"

	"github.com/labstack/echo/v4"
)

func respondError(c echo.Context, err error) error {
	var svcErr *service.ServiceError
	if errors.As(err, &svcErr) {
		return c.JSON(svcErr.StatusCode, svcErr.Response())
	}
	return c.JSON(http.StatusInternalServerError, &dto.ErrorResponse{Error: err.Error()})
}

func invalidBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, &dto.ErrorResponse{Error: "invalid request body"})
}
