package http_rating

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/moviebase/core/internal/model"
	usecase_rating "github.com/moviebase/core/internal/usecase/rating"
)

type RateMovieRequestDTO struct {
	Score float64 `json:"score" binding:"required" example:"4.5"`
}

type RatingResponseDTO struct {
	UserID  int64   `json:"user_id"`
	MovieID int64   `json:"movie_id"`
	Score   float64 `json:"score"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

type Controller struct {
	uc *usecase_rating.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_rating.Usecase, opts ...ControllerOption) *Controller {
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
	rating := router.Group("/movies/:movie_id/rating")
	rating.PUT("", c.rateMovie)
	rating.PATCH("", c.changeRating)
	rating.DELETE("", c.removeRating)
	rating.GET("", c.getRating)
}

// rateMovie upserts the caller's rating for a movie.
func (c *Controller) rateMovie(ctx *gin.Context) {
	userID, movieID, ok := c.identify(ctx)
	if !ok {
		return
	}

	var req RateMovieRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request body", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	rating := model.Rating{UserID: userID, MovieID: movieID, Score: req.Score}
	if err := c.uc.UpsertRating(ctx.Request.Context(), rating); err != nil {
		c.fail(ctx, err, movieID)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// changeRating updates an existing rating only; 404 when none exists yet.
func (c *Controller) changeRating(ctx *gin.Context) {
	userID, movieID, ok := c.identify(ctx)
	if !ok {
		return
	}

	var req RateMovieRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request body", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	rating := model.Rating{UserID: userID, MovieID: movieID, Score: req.Score}
	if err := c.uc.UpdateRating(ctx.Request.Context(), rating); err != nil {
		c.fail(ctx, err, movieID)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *Controller) removeRating(ctx *gin.Context) {
	userID, movieID, ok := c.identify(ctx)
	if !ok {
		return
	}

	if err := c.uc.DeleteRating(ctx.Request.Context(), userID, movieID); err != nil {
		c.fail(ctx, err, movieID)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *Controller) getRating(ctx *gin.Context) {
	userID, movieID, ok := c.identify(ctx)
	if !ok {
		return
	}

	rating := c.uc.RatingFor(ctx.Request.Context(), userID, movieID)
	if rating == nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{
			Error: "Rating not found",
			Code:  http.StatusNotFound,
		})
		return
	}

	ctx.JSON(http.StatusOK, RatingResponseDTO{
		UserID:  rating.UserID,
		MovieID: rating.MovieID,
		Score:   rating.Score,
	})
}

func (c *Controller) fail(ctx *gin.Context, err error, movieID model.MovieID) {
	switch {
	case errors.Is(err, usecase_rating.ErrInvalidScore):
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid score",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	case errors.Is(err, usecase_rating.ErrRatingNotFound):
		ctx.JSON(http.StatusNotFound, ErrorResponse{
			Error: "Rating not found",
			Code:  http.StatusNotFound,
		})
	default:
		c.logger.Error("rating operation failed",
			slog.String("error", err.Error()),
			slog.Int64("movie_id", movieID),
		)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to store rating",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
	}
}

// identify reads the caller from X-User-ID and the movie from the path.
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
