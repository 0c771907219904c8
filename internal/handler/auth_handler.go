package handler

import (
	"errors"
	"net/http"

	"craveconnect/internal/domain/model"
	auth "craveconnect/internal/usecase/auth_usecase"
	"craveconnect/internal/validator"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	registerUC *auth.RegisterUsecase
	loginUC    *auth.LoginUsecase
}

func NewAuthHandler(registerUC *auth.RegisterUsecase, loginUC *auth.LoginUsecase) *AuthHandler {
	return &AuthHandler{registerUC: registerUC, loginUC: loginUC}
}

func (h *AuthHandler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/auth")
	g.POST("/user", h.registerUser)
	g.POST("/user-login", h.login(model.RoleUser))
	g.POST("/vendor", h.registerVendor)
	g.POST("/vendor-login", h.login(model.RoleVendor))
	g.POST("/admin", h.registerAdmin)
	g.POST("/admin-login", h.login(model.RoleAdmin))
}

func writeAuthError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, validator.ErrInvalidInput):
		return fail(c, http.StatusBadRequest, validator.Message(err))
	case errors.Is(err, auth.ErrEmailAlreadyExists):
		return fail(c, http.StatusConflict, "email already exists")
	case errors.Is(err, auth.ErrInvalidCredentials):
		return fail(c, http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, auth.ErrAccountBlocked):
		return fail(c, http.StatusForbidden, "account is blocked")
	}
	return writeError(c, err)
}

func (h *AuthHandler) registerUser(c echo.Context) error {
	var req auth.RegisterUserInput
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	user, err := h.registerUC.RegisterUser(c.Request().Context(), req)
	if err != nil {
		return writeAuthError(c, err)
	}
	return success(c, http.StatusCreated, "user created", user)
}

func (h *AuthHandler) registerVendor(c echo.Context) error {
	var req auth.RegisterVendorInput
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	vendor, err := h.registerUC.RegisterVendor(c.Request().Context(), req)
	if err != nil {
		return writeAuthError(c, err)
	}
	return success(c, http.StatusCreated, "vendor created", vendor)
}

func (h *AuthHandler) registerAdmin(c echo.Context) error {
	var req auth.RegisterAdminInput
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	admin, err := h.registerUC.RegisterAdmin(c.Request().Context(), req)
	if err != nil {
		return writeAuthError(c, err)
	}
	return success(c, http.StatusCreated, "admin created", admin)
}

func (h *AuthHandler) login(role model.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req auth.LoginInput
		if err := c.Bind(&req); err != nil {
			return fail(c, http.StatusBadRequest, "invalid body")
		}
		out, err := h.loginUC.Execute(c.Request().Context(), role, req)
		if err != nil {
			return writeAuthError(c, err)
		}
		return success(c, http.StatusOK, "login successful", map[string]any{
			"access_token": out.AccessToken,
			"expires_in":   out.ExpiresIn,
			string(role):   out.Account,
		})
	}
}
