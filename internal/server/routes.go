package server

import (
	"craveconnect/internal/handler"

	"github.com/labstack/echo/v4"
)

// Handlers is every HTTP handler the API serves.
type Handlers struct {
	Auth   *handler.AuthHandler
	Order  *handler.OrderHandler
	Food   *handler.FoodHandler
	User   *handler.UserHandler
	Vendor *handler.VendorHandler
	Admin  *handler.AdminHandler
	Review *handler.ReviewHandler
	Health *handler.HealthHandler
}

func RegisterRoutes(e *echo.Echo, h Handlers, guards handler.Guards) {
	h.Health.RegisterRoutes(e)

	api := e.Group("/api/v1")
	h.Auth.RegisterRoutes(api)
	h.Order.RegisterRoutes(api, guards)
	h.Food.RegisterRoutes(api, guards)
	h.User.RegisterRoutes(api, guards)
	h.Vendor.RegisterRoutes(api, guards)
	h.Admin.RegisterRoutes(api, guards)
	h.Review.RegisterRoutes(api, guards)
}
