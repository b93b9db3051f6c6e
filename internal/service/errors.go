package service

import (
	"errors"
	"net/http"
	"storefront-checkout/internal/client"
	"storefront-checkout/internal/dto"
)

// ServiceError carries the status and JSON error body a handler should answer with.
type ServiceError struct {
	StatusCode int
	Message    any
	Details    any
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	if msg, ok := e.Message.(string); ok {
		return msg
	}
	return http.StatusText(e.StatusCode)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func (e *ServiceError) Response() *dto.ErrorResponse {
	return &dto.ErrorResponse{Error: e.Message, Details: e.Details}
}

func badRequest(msg string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusBadRequest, Message: msg}
}

func internalError(err error) *ServiceError {
	return &ServiceError{StatusCode: http.StatusInternalServerError, Message: err.Error(), Err: err}
}

// UpstreamStatus maps a gateway's HTTP status to the status returned to our caller:
// gateway 4xx/5xx pass through, anything else non-2xx becomes 500.
func UpstreamStatus(vendorStatus int) int {
	if vendorStatus >= 400 && vendorStatus <= 599 {
		return vendorStatus
	}
	return http.StatusInternalServerError
}

// asVendorError reports whether err is a non-2xx gateway answer.
func asVendorError(err error) (*client.VendorError, bool) {
	var vendorErr *client.VendorError
	if errors.As(err, &vendorErr) {
		return vendorErr, true
	}
	return nil, false
}
