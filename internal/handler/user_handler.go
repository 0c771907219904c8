package handler

import (
	"net/http"

	"craveconnect/internal/domain/model"
	"craveconnect/internal/usecase"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	uc *usecase.UserUsecase
}

func NewUserHandler(uc *usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(api *echo.Group, guards Guards) {
	g := api.Group("/user")
	g.GET("/users", h.list)
	g.GET("/:userId", h.get)

	self := guards.For(model.RoleUser)
	g.PUT("/:userId", h.update, self...)
	g.DELETE("/:userId", h.delete, self...)
}

func (h *UserHandler) list(c echo.Context) error {
	users, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return success(c, http.StatusOK, "users retrieved", users)
}

func (h *UserHandler) get(c echo.Context) error {
	id, ok := pathID(c, "userId")
	if !ok {
		return fail(c, http.StatusBadRequest, "invalid user id")
	}
	user, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return success(c, http.StatusOK, "user retrieved", user)
}

func (h *UserHandler) update(c echo.Context) error {
	p, ok := getPrincipal(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	id, ok := pathID(c, "userId")
	if !ok {
		return fail(c, http.StatusBadRequest, "invalid user id")
	}
	var req usecase.UpdateUserInput
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	user, err := h.uc.Update(c.Request().Context(), p, id, req)
	if err != nil {
		return writeError(c, err)
	}
	return success(c, http.StatusOK, "user updated", user)
}

func (h *UserHandler) delete(c echo.Context) error {
	p, ok := getPrincipal(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	id, ok := pathID(c, "userId")
	if !ok {
		return fail(c, http.StatusBadRequest, "invalid user id")
	}
	if err := h.uc.Delete(c.Request().Context(), p, id); err != nil {
		return writeError(c, err)
	}
	return success(c, http.StatusOK, "user deleted", nil)
}
