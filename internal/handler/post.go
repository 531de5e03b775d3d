package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"geogame/internal/service"
)

// PostHandler handles HTTP requests for post administration.
type PostHandler struct {
	gameService *service.GameService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(gameService *service.GameService) *PostHandler {
	return &PostHandler{gameService: gameService}
}

// CreatePostRequest is the HTTP request body for creating a post.
type CreatePostRequest struct {
	PostID       string  `json:"postId"`
	TaskText     string  `json:"taskText"`
	IsURL        bool    `json:"isUrl"`
	TaskSolution string  `json:"taskSolution"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
}

// PostResponse is the HTTP response for post data on the admin surface.
// Unlike the reach-check payload it includes the solution.
type PostResponse struct {
	PostID       string  `json:"postId"`
	TaskText     string  `json:"taskText"`
	IsURL        bool    `json:"isUrl"`
	TaskSolution string  `json:"taskSolution"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
}

// Create handles POST /v1/posts
func (h *PostHandler) Create(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	post, err := h.gameService.AddPost(c.Request.Context(), service.AddPostRequest{
		PostID:       req.PostID,
		TaskText:     req.TaskText,
		IsURL:        req.IsURL,
		TaskSolution: req.TaskSolution,
		Lat:          req.Lat,
		Lon:          req.Lon,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, PostResponse{
		PostID:       post.ID,
		TaskText:     post.Task.Text,
		IsURL:        post.Task.IsURL,
		TaskSolution: post.TaskSolution,
		Lat:          post.Location.Lat,
		Lon:          post.Location.Lon,
	})
}

// GetAll handles GET /v1/posts
func (h *PostHandler) GetAll(c *gin.Context) {
	posts, err := h.gameService.ListPosts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	var response []PostResponse
	for _, p := range posts {
		response = append(response, PostResponse{
			PostID:       p.ID,
			TaskText:     p.Task.Text,
			IsURL:        p.Task.IsURL,
			TaskSolution: p.TaskSolution,
			Lat:          p.Location.Lat,
			Lon:          p.Location.Lon,
		})
	}

	c.JSON(http.StatusOK, response)
}
