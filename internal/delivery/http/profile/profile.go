package http_profile

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moviebase/core/internal/model"
	usecase_profile "github.com/moviebase/core/internal/usecase/profile"
)

type FeedEntryDTO struct {
	MovieID    int64      `json:"movie_id"`
	Title      string     `json:"title"`
	Kind       string     `json:"kind"`
	Rating     *float64   `json:"rating,omitempty"`
	ReviewText *string    `json:"review_text,omitempty"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
}

type FeedResponseDTO struct {
	Entries []FeedEntryDTO `json:"entries"`
	Total   int            `json:"total"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

type Controller struct {
	uc *usecase_profile.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_profile.Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/users/:user_id/feed", c.getFeed)
}

// getFeed returns the user's activity feed: rated movies first by score,
// review-only movies after by recency.
func (c *Controller) getFeed(ctx *gin.Context) {
	idParam := ctx.Param("user_id")
	userID, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		c.logger.Warn("invalid user ID",
			slog.String("id", idParam),
			slog.String("error", err.Error()),
		)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid user ID",
			Code:  http.StatusBadRequest,
		})
		return
	}

	entries := c.uc.Feed(ctx.Request.Context(), userID)

	dtos := make([]FeedEntryDTO, len(entries))
	for i, entry := range entries {
		dtos[i] = convertEntry(entry)
	}

	ctx.JSON(http.StatusOK, FeedResponseDTO{
		Entries: dtos,
		Total:   len(dtos),
	})
}

func convertEntry(entry model.FeedEntry) FeedEntryDTO {
	return FeedEntryDTO{
		MovieID:    entry.MovieID,
		Title:      entry.Title,
		Kind:       string(entry.Kind()),
		Rating:     entry.Rating,
		ReviewText: entry.ReviewText,
		ReviewedAt: entry.ReviewedAt,
	}
}
