package handler

import (
	"net/http"
	"strconv"

	errs "github.com/amirhossein-jamali/settlement-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// respondError logs err and writes the standard error body with the status mapped from it.
// Server-side failures never leak their internals to the caller.
func respondError(c *gin.Context, logger coreport.Logger, logMessage string, err error, fields map[string]any) {
	status := errs.HTTPStatus(err)

	logFields := errs.LogFields(err)
	for k, v := range fields {
		logFields[k] = v
	}
	logFields["request_id"] = middleware.RequestID(c)
	logFields["status"] = status

	message := err.Error()
	switch {
	case status == http.StatusInternalServerError:
		logger.Error(logMessage, logFields)
		message = "Internal server error"
	case status == http.StatusServiceUnavailable && errs.ErrorCode(err) == errs.CodeDatabaseConnection:
		logger.Error(logMessage, logFields)
		message = "Service temporarily unavailable"
	case status >= http.StatusInternalServerError:
		logger.Error(logMessage, logFields)
	default:
		logger.Warn(logMessage, logFields)
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    errs.ErrorCode(err),
		Message: message,
	})
}

// badRequest rejects a request that could not be parsed
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    errs.ErrorCode(errs.ErrInvalidRequest),
		Message: message,
	})
}

// parseID reads a numeric path parameter, writing a 400 response when it is malformed
func parseID(c *gin.Context, param string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		badRequest(c, "Invalid "+param+" format")
		return 0, false
	}
	return id, true
}
