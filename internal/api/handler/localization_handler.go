package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloghub/blog-api/internal/core/ports"
)

// LocalizationHandler serves translated UI messages. Reads are public and
// cached; mutations are admin-only.
type LocalizationHandler struct {
	service ports.LocalizationService
}

func NewLocalizationHandler(service ports.LocalizationService) *LocalizationHandler {
	return &LocalizationHandler{service: service}
}

type messageRequest struct {
	Key    string `json:"key"    validate:"required,max=255"`
	Locale string `json:"locale" validate:"required,max=10"`
	Value  string `json:"value"  validate:"required"`
}

// AllMessages handles GET /localization/messages/:locale — the full
// key→value map for one locale.
//
// @Summary      Get all messages for a locale
// @Tags         localization
// @Produce      json
// @Param        locale  path      string  true  "Locale code (e.g. en, es)"
// @Success      200     {object}  map[string]string
// @Router       /localization/messages/{locale} [get]
func (h *LocalizationHandler) AllMessages(c echo.Context) error {
	messages, err := h.service.AllMessages(c.Request().Context(), c.Param("locale"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messages)
}

// GetMessage handles GET /localization/message?key=...&locale=... — a single
// translation with fallback to the default locale and finally the key itself.
//
// @Summary      Resolve a single message
// @Tags         localization
// @Produce      json
// @Param        key     query     string  true   "Message key"
// @Param        locale  query     string  false  "Locale code (default en)"
// @Success      200     {object}  map[string]string
// @Router       /localization/message [get]
func (h *LocalizationHandler) GetMessage(c echo.Context) error {
	key := c.QueryParam("key")
	if key == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "key is required")
	}

	value := h.service.GetMessage(c.Request().Context(), key, c.QueryParam("locale"))
	return c.JSON(http.StatusOK, map[string]string{"key": key, "value": value})
}

// SaveMessage handles POST /localization/messages — admin only.
//
// @Summary      Create a message
// @Tags         localization
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      messageRequest  true  "Message"
// @Success      201   {object}  domain.Message
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /localization/messages [post]
func (h *LocalizationHandler) SaveMessage(c echo.Context) error {
	var req messageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	msg, err := h.service.SaveMessage(c.Request().Context(), ports.SaveMessageInput{
		Key:    req.Key,
		Locale: req.Locale,
		Value:  req.Value,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, msg)
}

// UpdateMessage handles PUT /localization/messages/:id — admin only.
//
// @Summary      Update a message
// @Tags         localization
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Message id"
// @Param        body  body      messageRequest  true  "Message"
// @Success      200   {object}  domain.Message
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /localization/messages/{id} [put]
func (h *LocalizationHandler) UpdateMessage(c echo.Context) error {
	var req messageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	msg, err := h.service.SaveMessage(c.Request().Context(), ports.SaveMessageInput{
		ID:     c.Param("id"),
		Key:    req.Key,
		Locale: req.Locale,
		Value:  req.Value,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msg)
}

// DeleteMessage handles DELETE /localization/messages/:id — admin only.
//
// @Summary      Delete a message
// @Tags         localization
// @Security     BearerAuth
// @Param        id  path  string  true  "Message id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /localization/messages/{id} [delete]
func (h *LocalizationHandler) DeleteMessage(c echo.Context) error {
	if err := h.service.DeleteMessage(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
