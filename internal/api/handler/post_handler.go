package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
)

// PostHandler handles HTTP requests for post operations. Authorization lives
// entirely in the service layer; the handler only maps transport to inputs.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

type postRequest struct {
	Title   string   `json:"title"   validate:"required,max=200"`
	Content string   `json:"content" validate:"required"`
	TagIDs  []string `json:"tag_ids"`
}

type postResponse struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	Content        string       `json:"content"`
	AuthorID       string       `json:"author_id,omitempty"`
	AuthorUsername string       `json:"author_username,omitempty"`
	Tags           []domain.Tag `json:"tags"`
	CreatedAt      string       `json:"created_at"`
	UpdatedAt      string       `json:"updated_at"`
}

// List handles GET /posts — admins see every post, users only their own.
//
// @Summary      List posts
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   postResponse
// @Failure      403  {object}  map[string]string
// @Router       /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]postResponse, 0, len(posts))
	for i := range posts {
		resp = append(resp, toPostResponse(&posts[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /posts/:id.
//
// @Summary      Get a post by id
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  postResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponse(post))
}

// Create handles POST /posts — the author is always the caller.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      postRequest  true  "Post contents"
// @Success      201   {object}  postResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	var req postRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.service.Create(c.Request().Context(), ports.CreatePostInput{
		Title:   req.Title,
		Content: req.Content,
		TagIDs:  req.TagIDs,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toPostResponse(post))
}

// Update handles PUT /posts/:id — owner or admin only.
//
// @Summary      Update a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Post id"
// @Param        body  body      postRequest  true  "Replacement contents"
// @Success      200   {object}  postResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	var req postRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdatePostInput{
		Title:   req.Title,
		Content: req.Content,
		TagIDs:  req.TagIDs,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPostResponse(post))
}

// Delete handles DELETE /posts/:id — owner or admin only.
//
// @Summary      Delete a post
// @Tags         posts
// @Security     BearerAuth
// @Param        id  path  string  true  "Post id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toPostResponse(p *domain.Post) postResponse {
	tags := p.Tags
	if tags == nil {
		tags = []domain.Tag{}
	}
	return postResponse{
		ID:             p.ID,
		Title:          p.Title,
		Content:        p.Content,
		AuthorID:       p.AuthorID,
		AuthorUsername: p.AuthorUsername,
		Tags:           tags,
		CreatedAt:      p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
