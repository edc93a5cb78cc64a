package http_review

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moviebase/core/internal/model"
	usecase_review "github.com/moviebase/core/internal/usecase/review"
)

type ReviewRequestDTO struct {
	Text string `json:"text" binding:"required" example:"Still holds up after all these years."`
}

type ReviewResponseDTO struct {
	UserID    int64     `json:"user_id"`
	MovieID   int64     `json:"movie_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

type Controller struct {
	uc *usecase_review.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_review.Usecase, opts ...ControllerOption) *Controller {
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
	review := router.Group("/movies/:movie_id/review")
	review.PUT("", c.writeReview)
	review.PATCH("", c.changeReview)
	review.DELETE("", c.removeReview)
	review.GET("", c.getReview)
}

func (c *Controller) writeReview(ctx *gin.Context) {
	userID, movieID, ok := c.identify(ctx)
	if !ok {
		return
	}

	req, ok := c.bind(ctx)
	if !ok {
		return
	}

	review := model.Review{UserID: userID, MovieID: movieID, Text: req.Text}
	if err := c.uc.UpsertReview(ctx.Request.Context(), review); err != nil {
		c.fail(ctx, err, movieID)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *Controller) changeReview(ctx *gin.Context) {
	userID, movieID, ok := c.identify(ctx)
	if !ok {
		return
	}

	req, ok := c.bind(ctx)
	if !ok {
		return
	}

	review := model.Review{UserID: userID, MovieID: movieID, Text: req.Text}
	if err := c.uc.UpdateReview(ctx.Request.Context(), review); err != nil {
		c.fail(ctx, err, movieID)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *Controller) removeReview(ctx *gin.Context) {
	userID, movieID, ok := c.identify(ctx)
	if !ok {
		return
	}

	if err := c.uc.DeleteReview(ctx.Request.Context(), userID, movieID); err != nil {
		c.fail(ctx, err, movieID)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *Controller) getReview(ctx *gin.Context) {
	userID, movieID, ok := c.identify(ctx)
	if !ok {
		return
	}

	review := c.uc.ReviewFor(ctx.Request.Context(), userID, movieID)
	if review == nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{
			Error: "Review not found",
			Code:  http.StatusNotFound,
		})
		return
	}

	ctx.JSON(http.StatusOK, ReviewResponseDTO{
		UserID:    review.UserID,
		MovieID:   review.MovieID,
		Text:      review.Text,
		CreatedAt: review.CreatedAt,
	})
}

func (c *Controller) bind(ctx *gin.Context) (ReviewRequestDTO, bool) {
	var req ReviewRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request body", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return ReviewRequestDTO{}, false
	}
	return req, true
}

func (c *Controller) fail(ctx *gin.Context, err error, movieID model.MovieID) {
	switch {
	case errors.Is(err, usecase_review.ErrEmptyText):
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Empty review text",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	case errors.Is(err, usecase_review.ErrReviewNotFound):
		ctx.JSON(http.StatusNotFound, ErrorResponse{
			Error: "Review not found",
			Code:  http.StatusNotFound,
		})
	default:
		c.logger.Error("review operation failed",
			slog.String("error", err.Error()),
			slog.Int64("movie_id", movieID),
		)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to store review",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
	}
}

func (c *Controller) identify(ctx *gin.Context) (model.UserID, model.MovieID, bool) {
	userID, err := strconv.ParseInt(ctx.GetHeader("X-User-ID"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "Missing or invalid X-User-ID header",
			Code:  http.StatusUnauthorized,
		})
		return 0, 0, false
	}

	movieID, err := strconv.ParseInt(ctx.Param("movie_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid movie ID",
			Code:  http.StatusBadRequest,
		})
		return 0, 0, false
	}

	return userID, movieID, true
}
