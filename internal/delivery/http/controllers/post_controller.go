package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"credinta/internal/delivery/http/helpers"
	"credinta/internal/domain"
	"credinta/internal/lifecycle"
)

// PostController serves the public post listings and the admin CRUD.
type PostController struct {
	Logger  *slog.Logger
	Service domain.PostService
}

func NewPostController(logger *slog.Logger, svc domain.PostService) *PostController {
	return &PostController{Logger: logger, Service: svc}
}

// PostRequest is the request body for POST /api/admin/posts and PUT /api/admin/posts/{postID}.
type PostRequest struct {
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	Category      string     `json:"category"`
	PostType      string     `json:"post_type"`
	EventType     string     `json:"event_type"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	Duration      string     `json:"duration"`
	IsActive      bool       `json:"is_active"`
	IsPublished   bool       `json:"is_published"`
	CloudinaryIDs []string   `json:"cloudinary_ids"`
	GalleryFlag   bool       `json:"gallery_flag"`
	GalleryIDs    []string   `json:"gallery_image_ids"`
	URL           string     `json:"url"`
	ReadButton    bool       `json:"read_button"`
}

// Validate implements Validator. Date coherence is checked again by the
// service; this catches the obvious shape errors early.
func (p PostRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(p.Title) == "" {
		errs = append(errs, "title is required")
	}
	if strings.TrimSpace(p.Content) == "" {
		errs = append(errs, "content is required")
	}
	if p.Category != domain.CategoryProject && p.Category != domain.CategoryNews {
		errs = append(errs, "category must be project or news")
	}
	return errs
}

func (p PostRequest) toDomain() *domain.Post {
	return &domain.Post{
		Title:         p.Title,
		Content:       p.Content,
		Category:      p.Category,
		PostType:      p.PostType,
		EventType:     lifecycle.EventType(p.EventType),
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		Duration:      p.Duration,
		IsActive:      p.IsActive,
		IsPublished:   p.IsPublished,
		CloudinaryIDs: p.CloudinaryIDs,
		GalleryFlag:   p.GalleryFlag,
		GalleryIDs:    p.GalleryIDs,
		URL:           p.URL,
		ReadButton:    p.ReadButton,
	}
}

// ListPostsSuccessResponse is the success response envelope for GET /api/posts (200).
type ListPostsSuccessResponse struct {
	Data  []*domain.CategorizedPost `json:"data"`
	Error *helpers.APIError         `json:"error"`
}

// ListPosts godoc
// @Summary List published posts with lifecycle categories
// @Description Returns published posts annotated with project_type (past/ongoing/future), status label, and display date. Filter with category, post_type, and state query params.
// @Tags posts
// @Produce json
// @Param category query string false "Filter by category (project or news)"
// @Param post_type query string false "Filter by post type"
// @Param state query string false "Keep only one lifecycle state (past, ongoing, future)"
// @Success 200 {object} controllers.ListPostsSuccessResponse "data is an array of categorized posts"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/posts [get]
func (c *PostController) ListPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	state := lifecycle.State(q.Get("state"))
	switch state {
	case "", lifecycle.StatePast, lifecycle.StateOngoing, lifecycle.StateFuture:
	default:
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "state must be past, ongoing, or future")
		return
	}
	filter := domain.PostFilter{
		Category:      q.Get("category"),
		PostType:      q.Get("post_type"),
		PublishedOnly: true,
	}
	posts, err := c.Service.ListCategorized(r.Context(), filter, state)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, posts)
}

// GetPostSuccessResponse is the success response envelope for GET /api/posts/{postID} (200).
type GetPostSuccessResponse struct {
	Data  *domain.CategorizedPost `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

// GetPost godoc
// @Summary Get a post by ID
// @Description Returns the post annotated with its derived lifecycle fields.
// @Tags posts
// @Produce json
// @Param postID path int true "Post ID"
// @Success 200 {object} controllers.GetPostSuccessResponse "data contains the categorized post"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/posts/{postID} [get]
func (c *PostController) GetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePostID(w, r)
	if !ok {
		return
	}
	post, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "post not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, post)
}

// ListAdminPosts godoc
// @Summary List all posts including drafts
// @Description Same shape as the public listing, but without the published-only restriction, so admins can review drafts.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param category query string false "Filter by category (project or news)"
// @Param post_type query string false "Filter by post type"
// @Param state query string false "Keep only one lifecycle state (past, ongoing, future)"
// @Success 200 {object} controllers.ListPostsSuccessResponse "data is an array of categorized posts"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/admin/posts [get]
func (c *PostController) ListAdminPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	state := lifecycle.State(q.Get("state"))
	switch state {
	case "", lifecycle.StatePast, lifecycle.StateOngoing, lifecycle.StateFuture:
	default:
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "state must be past, ongoing, or future")
		return
	}
	filter := domain.PostFilter{
		Category: q.Get("category"),
		PostType: q.Get("post_type"),
	}
	posts, err := c.Service.ListCategorized(r.Context(), filter, state)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, posts)
}

// CreatePostSuccessResponse is the success response envelope for POST /api/admin/posts (201).
type CreatePostSuccessResponse struct {
	Data  *domain.Post      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CreatePost godoc
// @Summary Create a post
// @Description Creates a project, event, or news post. Event dates are validated against the event type before anything is stored.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body PostRequest true "Post data"
// @Success 201 {object} controllers.CreatePostSuccessResponse "data contains the created post"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/admin/posts [post]
func (c *PostController) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req PostRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	post := req.toDomain()
	if err := c.Service.Create(r.Context(), post); err != nil {
		if errors.Is(err, domain.ErrInvalidDate) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, post)
}

// UpdatePostSuccessResponse is the success response envelope for PUT /api/admin/posts/{postID} (200).
type UpdatePostSuccessResponse struct {
	Data  *domain.Post      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// UpdatePost godoc
// @Summary Update a post
// @Description Replaces the post's editable fields. Event dates are re-validated.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param postID path int true "Post ID"
// @Param body body PostRequest true "Post data"
// @Success 200 {object} controllers.UpdatePostSuccessResponse "data contains the updated post"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/admin/posts/{postID} [put]
func (c *PostController) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePostID(w, r)
	if !ok {
		return
	}
	var req PostRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	post := req.toDomain()
	post.ID = id
	if err := c.Service.Update(r.Context(), post); err != nil {
		if errors.Is(err, domain.ErrInvalidDate) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "post not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, post)
}

// DeletePostResponse is the data payload for DELETE /api/admin/posts/{postID} (200).
type DeletePostResponse struct {
	Status string `json:"status"`
}

// DeletePostSuccessResponse is the success response envelope for DELETE /api/admin/posts/{postID} (200).
type DeletePostSuccessResponse struct {
	Data  DeletePostResponse `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// DeletePost godoc
// @Summary Delete a post
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param postID path int true "Post ID"
// @Success 200 {object} controllers.DeletePostSuccessResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/admin/posts/{postID} [delete]
func (c *PostController) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePostID(w, r)
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "post not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeletePostResponse{Status: "deleted"})
}

// SearchPostsResponse is the data payload for GET /api/admin/posts/search (200).
type SearchPostsResponse struct {
	Items      []*domain.Post         `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// SearchPostsSuccessResponse is the success response envelope for GET /api/admin/posts/search (200).
type SearchPostsSuccessResponse struct {
	Data  SearchPostsResponse `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// SearchPosts godoc
// @Summary Search posts by title or content
// @Description Case-insensitive substring search over title and content, paginated.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search query"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.SearchPostsSuccessResponse "data contains items and pagination"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/admin/posts/search [get]
func (c *PostController) SearchPosts(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "q is required")
		return
	}
	params := helpers.ParsePagination(r)
	posts, total, err := c.Service.Search(r.Context(), query, params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	meta := helpers.NewPaginationMeta(params.Page, params.PageSize, total)
	helpers.WriteJSONSuccess(w, http.StatusOK, SearchPostsResponse{Items: posts, Pagination: meta})
}

func parsePostID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("postID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid postID")
		return 0, false
	}
	return id, true
}
