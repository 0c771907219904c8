package handler

import (
	"net/http"

	"craveconnect/internal/domain/model"
	"craveconnect/internal/usecase"

	"github.com/labstack/echo/v4"
)

type VendorHandler struct {
	uc *usecase.VendorUsecase
}

func NewVendorHandler(uc *usecase.VendorUsecase) *VendorHandler {
	return &VendorHandler{uc: uc}
}

func (h *VendorHandler) RegisterRoutes(api *echo.Group, guards Guards) {
	g := api.Group("/vendor")
	g.GET("/vendors", h.list)
	g.GET("/reviews/:vendorId", h.reviews)

	vendorOnly := guards.For(model.RoleVendor)
	g.GET("/list-food", h.listFood, vendorOnly...)
	g.GET("/list-reviews/:foodId", h.listFoodReviews, vendorOnly...)
	g.GET("/vendor-dashboard/:vendorId", h.dashboard, vendorOnly...)
	g.PUT("/:vendorId", h.update, vendorOnly...)
	g.DELETE("/:vendorId", h.delete, vendorOnly...)

	g.GET("/:vendorId", h.get)
}

func (h *VendorHandler) list(c echo.Context) error {
	vendors, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return success(c, http.StatusOK, "vendors retrieved", vendors)
}

func (h *VendorHandler) get(c echo.Context) error {
	id, ok := pathID(c, "vendorId")
	if !ok {
		return fail(c, http.StatusBadRequest, "invalid vendor id")
	}
	v, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return success(c, http.StatusOK, "vendor retrieved", v)
}

func (h *VendorHandler) reviews(c echo.Context) error {
	id, ok := pathID(c, "vendorId")
	if !ok {
		return fail(c, http.StatusBadRequest, "invalid vendor id")
	}
	reviews, err := h.uc.Reviews(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return success(c, http.StatusOK, "vendor reviews retrieved", reviews)
}

func (h *VendorHandler) update(c echo.Context) error {
	p, ok := getPrincipal(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	id, ok := pathID(c, "vendorId")
	if !ok {
		return fail(c, http.StatusBadRequest, "invalid vendor id")
	}
	var req usecase.UpdateVendorInput
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	v, err := h.uc.Update(c.Request().Context(), p, id, req)
	if err != nil {
		return writeError(c, err)
	}
	return success(c, http.StatusOK, "vendor updated", v)
}

func (h *VendorHandler) delete(c echo.Context) error {
	p, ok := getPrincipal(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	id, ok := pathID(c, "vendorId")
	if !ok {
		return fail(c, http.StatusBadRequest, "invalid vendor id")
	}
	if err := h.uc.Delete(c.Request().Context(), p, id); err != nil {
		return writeError(c, err)
	}
	return success(c, http.StatusOK, "vendor deleted", nil)
}

func (h *VendorHandler) listFood(c echo.Context) error {
	p, ok := getPrincipal(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	foods, err := h.uc.ListFoods(c.Request().Context(), p)
	if err != nil {
		return writeError(c, err)
	}
	return success(c, http.StatusOK, "foods retrieved", foods)
}

func (h *VendorHandler) listFoodReviews(c echo.Context) error {
	p, ok := getPrincipal(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	foodID, ok := pathID(c, "foodId")
	if !ok {
		return fail(c, http.StatusBadRequest, "invalid food id")
	}
	reviews, err := h.uc.ListFoodReviews(c.Request().Context(), p, foodID)
	if err != nil {
		return writeError(c, err)
	}
	return success(c, http.StatusOK, "food reviews retrieved", reviews)
}

func (h *VendorHandler) dashboard(c echo.Context) error {
	p, ok := getPrincipal(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	id, ok := pathID(c, "vendorId")
	if !ok {
		return fail(c, http.StatusBadRequest, "invalid vendor id")
	}
	d, err := h.uc.Dashboard(c.Request().Context(), p, id)
	if err != nil {
		return writeError(c, err)
	}
	return success(c, http.StatusOK, "dashboard retrieved", d)
}
