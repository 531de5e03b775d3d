package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"geogame/internal/service"
)

// GameHandler handles HTTP requests for the game API.
type GameHandler struct {
	gameService *service.GameService
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(gameService *service.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// NearbyPlayersRequest is the HTTP request body for the nearby search.
type NearbyPlayersRequest struct {
	UserName string  `json:"userName"`
	Password string  `json:"password"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Distance float64 `json:"distance"`
}

// NearbyPlayers handles POST /gameapi/nearbyplayers
func (h *GameHandler) NearbyPlayers(c *gin.Context) {
	var req NearbyPlayersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	players, err := h.gameService.NearbyPlayers(c.Request.Context(), service.NearbyRequest{
		UserName:       req.UserName,
		Password:       req.Password,
		Lat:            req.Lat,
		Lon:            req.Lon,
		DistanceMeters: req.Distance,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, players)
}

// GetPostIfReachedRequest is the HTTP request body for the reach check.
type GetPostIfReachedRequest struct {
	PostID string  `json:"postId"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
}

// GetPostIfReached handles POST /gameapi/getPostIfReached
func (h *GameHandler) GetPostIfReached(c *gin.Context) {
	var req GetPostIfReachedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	post, err := h.gameService.GetPostIfReached(c.Request.Context(), req.PostID, req.Lat, req.Lon)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}
