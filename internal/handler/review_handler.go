package handler

import (
	"net/http"

	"craveconnect/internal/domain/model"
	"craveconnect/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ReviewHandler struct {
	uc *usecase.ReviewUsecase
}

func NewReviewHandler(uc *usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

func (h *ReviewHandler) RegisterRoutes(api *echo.Group, guards Guards) {
	g := api.Group("/review", guards.For(model.RoleUser)...)

	g.POST("/make-review", h.create)
	g.PUT("/update-review/:id", h.update)
	g.DELETE("/delete-review/:reviewId", h.delete)
	g.GET("/list-reviews", h.list)
}

func (h *ReviewHandler) create(c echo.Context) error {
	p, ok := getPrincipal(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	var req usecase.CreateReviewInput
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	rv, err := h.uc.Create(c.Request().Context(), p, req)
	if err != nil {
		return writeError(c, err)
	}
	return success(c, http.StatusCreated, "review added", rv)
}

func (h *ReviewHandler) update(c echo.Context) error {
	p, ok := getPrincipal(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	id, ok := pathID(c, "id")
	if !ok {
		return fail(c, http.StatusBadRequest, "invalid review id")
	}
	var req usecase.UpdateReviewInput
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	rv, err := h.uc.Update(c.Request().Context(), p, id, req)
	if err != nil {
		return writeError(c, err)
	}
	return success(c, http.StatusOK, "review updated", rv)
}

func (h *ReviewHandler) delete(c echo.Context) error {
	p, ok := getPrincipal(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	id, ok := pathID(c, "reviewId")
	if !ok {
		return fail(c, http.StatusBadRequest, "invalid review id")
	}
	rv, err := h.uc.Delete(c.Request().Context(), p, id)
	if err != nil {
		return writeError(c, err)
	}
	return success(c, http.StatusOK, "review deleted", map[string]any{"deletedReview": rv})
}

func (h *ReviewHandler) list(c echo.Context) error {
	p, ok := getPrincipal(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	reviews, err := h.uc.List(c.Request().Context(), p)
	if err != nil {
		return writeError(c, err)
	}
	return success(c, http.StatusOK, "reviews retrieved", reviews)
}
