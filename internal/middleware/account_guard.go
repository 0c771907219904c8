package middleware

import (
	"context"
	"net/http"

	"craveconnect/internal/domain/model"
	"craveconnect/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AccountChecker interface {
	CheckActive(ctx context.Context, p model.Principal) error
}

// AccountGuard rejects tokens whose account was deleted (401) or blocked (403).
func AccountGuard(checker AccountChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}
			if err := checker.CheckActive(c.Request().Context(), p); err != nil {
				if he, ok := usecase.AsHTTPError(err); ok {
					return c.JSON(he.Status, errorJSON(he.Message))
				}
				return c.JSON(http.StatusInternalServerError, errorJSON("internal error"))
			}
			return next(c)
		}
	}
}
