package handler

import (
	"net/http"

	"craveconnect/internal/domain/model"
	"craveconnect/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	uc     *usecase.AdminUsecase
	orders *usecase.OrderUsecase
}

func NewAdminHandler(uc *usecase.AdminUsecase, orders *usecase.OrderUsecase) *AdminHandler {
	return &AdminHandler{uc: uc, orders: orders}
}

func (h *AdminHandler) RegisterRoutes(api *echo.Group, guards Guards) {
	g := api.Group("/admin", guards.For(model.RoleAdmin)...)

	g.GET("", h.stats)
	g.GET("/list-admin", h.list)
	g.PUT("/update-profile/:adminId", h.update)
	g.PATCH("/orders/:orderId/status", h.setOrderStatus)
	g.GET("/:adminId", h.get)
	g.DELETE("/:adminId", h.delete)
}

func (h *AdminHandler) stats(c echo.Context) error {
	p, ok := getPrincipal(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	s, err := h.uc.Stats(c.Request().Context(), p)
	if err != nil {
		return writeError(c, err)
	}
	return success(c, http.StatusOK, "platform stats retrieved", s)
}

func (h *AdminHandler) list(c echo.Context) error {
	p, ok := getPrincipal(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	admins, err := h.uc.List(c.Request().Context(), p)
	if err != nil {
		return writeError(c, err)
	}
	return success(c, http.StatusOK, "admins retrieved", admins)
}

func (h *AdminHandler) get(c echo.Context) error {
	p, ok := getPrincipal(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	id, ok := pathID(c, "adminId")
	if !ok {
		return fail(c, http.StatusBadRequest, "invalid admin id")
	}
	a, err := h.uc.Get(c.Request().Context(), p, id)
	if err != nil {
		return writeError(c, err)
	}
	return success(c, http.StatusOK, "admin retrieved", a)
}

func (h *AdminHandler) update(c echo.Context) error {
	p, ok := getPrincipal(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	id, ok := pathID(c, "adminId")
	if !ok {
		return fail(c, http.StatusBadRequest, "invalid admin id")
	}
	var req usecase.UpdateAdminInput
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	a, err := h.uc.Update(c.Request().Context(), p, id, req)
	if err != nil {
		return writeError(c, err)
	}
	return success(c, http.StatusOK, "admin updated", a)
}

func (h *AdminHandler) delete(c echo.Context) error {
	p, ok := getPrincipal(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	id, ok := pathID(c, "adminId")
	if !ok {
		return fail(c, http.StatusBadRequest, "invalid admin id")
	}
	if err := h.uc.Delete(c.Request().Context(), p, id); err != nil {
		return writeError(c, err)
	}
	return success(c, http.StatusOK, "admin deleted", nil)
}

func (h *AdminHandler) setOrderStatus(c echo.Context) error {
	p, ok := getPrincipal(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	id, ok := pathID(c, "orderId")
	if !ok {
		return fail(c, http.StatusBadRequest, "invalid order id")
	}
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	order, err := h.orders.AdminSetOrderStatus(c.Request().Context(), p, id, req.Status)
	if err != nil {
		return writeError(c, err)
	}
	return success(c, http.StatusOK, "order status updated", order)
}
