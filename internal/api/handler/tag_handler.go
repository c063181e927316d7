package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloghub/blog-api/internal/core/ports"
)

// TagHandler handles HTTP requests for tag operations.
type TagHandler struct {
	service ports.TagService
}

func NewTagHandler(service ports.TagService) *TagHandler {
	return &TagHandler{service: service}
}

type tagRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

// List handles GET /tags.
//
// @Summary      List all tags
// @Tags         tags
// @Produce      json
// @Success      200  {array}  domain.Tag
// @Router       /tags [get]
func (h *TagHandler) List(c echo.Context) error {
	tags, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tags)
}

// Get handles GET /tags/:id.
//
// @Summary      Get a tag by id
// @Tags         tags
// @Produce      json
// @Param        id   path      string  true  "Tag id"
// @Success      200  {object}  domain.Tag
// @Failure      404  {object}  map[string]string
// @Router       /tags/{id} [get]
func (h *TagHandler) Get(c echo.Context) error {
	tag, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tag)
}

// Create handles POST /tags — admin only.
//
// @Summary      Create a tag
// @Tags         tags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      tagRequest  true  "Tag name"
// @Success      201   {object}  domain.Tag
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /tags [post]
func (h *TagHandler) Create(c echo.Context) error {
	var req tagRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tag, err := h.service.Create(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, tag)
}

// Update handles PUT /tags/:id — admin only.
//
// @Summary      Rename a tag
// @Tags         tags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string      true  "Tag id"
// @Param        body  body      tagRequest  true  "New tag name"
// @Success      200   {object}  domain.Tag
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /tags/{id} [put]
func (h *TagHandler) Update(c echo.Context) error {
	var req tagRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tag, err := h.service.Update(c.Request().Context(), c.Param("id"), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tag)
}

// Delete handles DELETE /tags/:id — admin only.
//
// @Summary      Delete a tag
// @Tags         tags
// @Security     BearerAuth
// @Param        id  path  string  true  "Tag id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tags/{id} [delete]
func (h *TagHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
