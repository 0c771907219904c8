package handler

import (
	"net/http"
	"strconv"

	"craveconnect/internal/domain/model"
	"craveconnect/internal/logging"
	"craveconnect/internal/middleware"
	"craveconnect/internal/usecase"

	"github.com/labstack/echo/v4"
)

type SuccessResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type ErrorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

func success(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, SuccessResponse{Status: "success", Message: message, Data: data})
}

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, ErrorResponse{Status: "error", Error: message})
}

// writeError maps a usecase error onto the response. Anything untyped is 500.
func writeError(c echo.Context, err error) error {
	if he, ok := usecase.AsHTTPError(err); ok {
		if he.Status >= http.StatusInternalServerError {
			logging.FromContext(c.Request().Context()).Error("request failed", "error", err)
		}
		return fail(c, he.Status, he.Message)
	}
	logging.FromContext(c.Request().Context()).Error("unexpected error", "error", err)
	return fail(c, http.StatusInternalServerError, "internal error")
}

func getPrincipal(c echo.Context) (model.Principal, bool) {
	return middleware.PrincipalFrom(c)
}

func pathID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Guards builds the per-route middleware chain.
type Guards struct {
	Auth    echo.MiddlewareFunc
	Account echo.MiddlewareFunc
}

// For authenticates, checks the role and then the account state.
func (g Guards) For(roles ...model.Role) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{g.Auth, middleware.RequireRole(roles...), g.Account}
}
