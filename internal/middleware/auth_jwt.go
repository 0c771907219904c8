package middleware

import (
	"net/http"
	"strings"

	"craveconnect/internal/domain/model"

	"github.com/labstack/echo/v4"
)

const CtxPrincipalKey = "principal" // model.Principal

// TokenParser turns a raw bearer token into a principal.
type TokenParser interface {
	Parse(raw string) (model.Principal, error)
}

// AuthJWT authenticates the bearer token and stores the principal on the
// echo context.
func AuthJWT(parser TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authz := c.Request().Header.Get(echo.HeaderAuthorization)
			if authz == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}
			rawToken := strings.TrimSpace(parts[1])
			if rawToken == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			p, err := parser.Parse(rawToken)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorJSON("invalid or expired token"))
			}

			c.Set(CtxPrincipalKey, p)
			return next(c)
		}
	}
}

// PrincipalFrom returns the principal AuthJWT stored, if any.
func PrincipalFrom(c echo.Context) (model.Principal, bool) {
	p, ok := c.Get(CtxPrincipalKey).(model.Principal)
	if !ok || p.ID <= 0 {
		return model.Principal{}, false
	}
	return p, true
}

type errorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Status: "error", Error: msg}
}
