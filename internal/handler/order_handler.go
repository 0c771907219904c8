package handler

import (
	"net/http"
	"strconv"

	"craveconnect/internal/domain/model"
	"craveconnect/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type removeItemRequest struct {
	FoodID int64 `json:"foodId"`
}

type statusRequest struct {
	Status model.OrderStatus `json:"status"`
}

func (h *OrderHandler) RegisterRoutes(api *echo.Group, guards Guards) {
	g := api.Group("/order", guards.For(model.RoleUser)...)

	g.POST("/make-order", h.makeOrder)
	g.GET("/list-orders", h.list)
	g.GET("/get-order/:orderId", h.detail)
	g.PUT("/update-order/:orderId", h.replace)
	g.DELETE("/remove-orderItem/:orderId", h.removeItem)
	g.PATCH("/update-status/:orderId", h.setStatus)
	g.DELETE("/:orderId", h.delete)
}

func (h *OrderHandler) makeOrder(c echo.Context) error {
	p, ok := getPrincipal(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	var req usecase.OrderItemsInput
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}

	order, created, err := h.uc.MakeOrder(c.Request().Context(), p, req)
	if err != nil {
		return writeError(c, err)
	}
	if created {
		return success(c, http.StatusCreated, "order created", order)
	}
	return success(c, http.StatusOK, "order updated", order)
}

func (h *OrderHandler) list(c echo.Context) error {
	p, ok := getPrincipal(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	orders, err := h.uc.ListOrders(c.Request().Context(), p)
	if err != nil {
		return writeError(c, err)
	}
	return success(c, http.StatusOK, "orders retrieved", orders)
}

func (h *OrderHandler) detail(c echo.Context) error {
	p, ok := getPrincipal(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	id, ok := pathID(c, "orderId")
	if !ok {
		return fail(c, http.StatusBadRequest, "invalid order id")
	}
	order, err := h.uc.GetOrder(c.Request().Context(), p, id)
	if err != nil {
		return writeError(c, err)
	}
	return success(c, http.StatusOK, "order retrieved", order)
}

func (h *OrderHandler) replace(c echo.Context) error {
	p, ok := getPrincipal(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	id, ok := pathID(c, "orderId")
	if !ok {
		return fail(c, http.StatusBadRequest, "invalid order id")
	}
	var req usecase.OrderItemsInput
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}

	order, err := h.uc.ReplaceOrderItems(c.Request().Context(), p, id, req)
	if err != nil {
		return writeError(c, err)
	}
	return success(c, http.StatusOK, "order updated", order)
}

func (h *OrderHandler) removeItem(c echo.Context) error {
	p, ok := getPrincipal(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	id, ok := pathID(c, "orderId")
	if !ok {
		return fail(c, http.StatusBadRequest, "invalid order id")
	}
	var req removeItemRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	// clients that cannot send a DELETE body may pass ?foodId=
	if req.FoodID == 0 {
		req.FoodID, _ = strconv.ParseInt(c.QueryParam("foodId"), 10, 64)
	}

	order, err := h.uc.RemoveOrderItem(c.Request().Context(), p, id, req.FoodID)
	if err != nil {
		return writeError(c, err)
	}
	return success(c, http.StatusOK, "item removed from order", order)
}

func (h *OrderHandler) delete(c echo.Context) error {
	p, ok := getPrincipal(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	id, ok := pathID(c, "orderId")
	if !ok {
		return fail(c, http.StatusBadRequest, "invalid order id")
	}
	if err := h.uc.DeleteOrder(c.Request().Context(), p, id); err != nil {
		return writeError(c, err)
	}
	return success(c, http.StatusOK, "order deleted", nil)
}

func (h *OrderHandler) setStatus(c echo.Context) error {
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

	order, err := h.uc.SetOrderStatus(c.Request().Context(), p, id, req.Status)
	if err != nil {
		return writeError(c, err)
	}
	return success(c, http.StatusOK, "order status updated", order)
}
