package handler

import (
	"net/http"

	"craveconnect/internal/domain/model"
	"craveconnect/internal/usecase"

	"github.com/labstack/echo/v4"
)

type FoodHandler struct {
	uc *usecase.FoodUsecase
}

func NewFoodHandler(uc *usecase.FoodUsecase) *FoodHandler {
	return &FoodHandler{uc: uc}
}

func (h *FoodHandler) RegisterRoutes(api *echo.Group, guards Guards) {
	g := api.Group("/food")
	g.GET("", h.list)
	g.GET("/:id", h.get)

	editors := guards.For(model.RoleVendor, model.RoleAdmin)
	g.POST("/upload-food", h.create, editors...)
	g.PUT("/:id", h.update, editors...)
	g.DELETE("/:id", h.delete, editors...)
}

func (h *FoodHandler) list(c echo.Context) error {
	foods, err := h.uc.List(c.Request().Context(), nil)
	if err != nil {
		return writeError(c, err)
	}
	return success(c, http.StatusOK, "foods retrieved", foods)
}

func (h *FoodHandler) get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return fail(c, http.StatusBadRequest, "invalid food id")
	}
	food, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return success(c, http.StatusOK, "food retrieved", food)
}

func (h *FoodHandler) create(c echo.Context) error {
	p, ok := getPrincipal(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	var req usecase.CreateFoodInput
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	food, err := h.uc.Create(c.Request().Context(), p, req)
	if err != nil {
		return writeError(c, err)
	}
	return success(c, http.StatusCreated, "food created", food)
}

func (h *FoodHandler) update(c echo.Context) error {
	p, ok := getPrincipal(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	id, ok := pathID(c, "id")
	if !ok {
		return fail(c, http.StatusBadRequest, "invalid food id")
	}
	var req usecase.UpdateFoodInput
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	food, err := h.uc.Update(c.Request().Context(), p, id, req)
	if err != nil {
		return writeError(c, err)
	}
	return success(c, http.StatusOK, "food updated", food)
}

func (h *FoodHandler) delete(c echo.Context) error {
	p, ok := getPrincipal(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	id, ok := pathID(c, "id")
	if !ok {
		return fail(c, http.StatusBadRequest, "invalid food id")
	}
	if err := h.uc.Delete(c.Request().Context(), p, id); err != nil {
		return writeError(c, err)
	}
	return success(c, http.StatusOK, "food deleted", nil)
}
