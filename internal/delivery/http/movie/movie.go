package http_movie

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moviebase/core/internal/model"
	"github.com/moviebase/core/internal/service/pagination"
	usecase_movie "github.com/moviebase/core/internal/usecase/movie"
	usecase_search "github.com/moviebase/core/internal/usecase/search"
)

// MovieResponseDTO carries one movie row in responses
type MovieResponseDTO struct {
	ID          int64    `json:"id" example:"603"`
	Title       string   `json:"title" example:"The Matrix"`
	Overview    string   `json:"overview" example:"A computer hacker learns the true nature of reality..."`
	PosterURL   string   `json:"poster_url" example:"https://example.com/poster.jpg"`
	ReleaseDate string   `json:"release_date" example:"1999-03-31"`
	Runtime     int      `json:"runtime" example:"136"`
	Rating      float64  `json:"rating" example:"4.4"`
	RatingCount int      `json:"rating_count" example:"1523"`
	Genres      []string `json:"genres,omitempty" example:"Action,Science Fiction"`
}

type PageDTO struct {
	Page       int   `json:"page"`
	TotalPages int   `json:"total_pages"`
	HasPrev    bool  `json:"has_prev"`
	HasNext    bool  `json:"has_next"`
	Window     []int `json:"window"`
}

// MoviesListResponseDTO DTO for a movie listing
type MoviesListResponseDTO struct {
	Movies []MovieResponseDTO `json:"movies"`
	Total  int                `json:"total"`
	Page   *PageDTO           `json:"page,omitempty"`
}

type SearchResponseDTO struct {
	Movies   []MovieResponseDTO `json:"movies"`
	Total    int                `json:"total"`
	Strategy string             `json:"strategy"`
}

type PersonDTO struct {
	Name       string `json:"name"`
	Character  string `json:"character,omitempty"`
	Job        string `json:"job,omitempty"`
	Department string `json:"department,omitempty"`
}

type ReviewDTO struct {
	UserID    int64     `json:"user_id"`
	MovieID   int64     `json:"movie_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type MovieDetailResponseDTO struct {
	Movie    MovieResponseDTO `json:"movie"`
	Cast     []PersonDTO      `json:"cast"`
	Crew     []PersonDTO      `json:"crew"`
	Director *PersonDTO       `json:"director,omitempty"`
	Reviews  []ReviewDTO      `json:"reviews"`

	OwnRating *float64   `json:"own_rating,omitempty"`
	OwnReview *ReviewDTO `json:"own_review,omitempty"`
}

type GenreDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func ConvertFromMovie(m *model.Movie) MovieResponseDTO {
	releaseDate := ""
	if !m.ReleaseDate.IsZero() {
		releaseDate = m.ReleaseDate.Format("2006-01-02")
	}

	return MovieResponseDTO{
		ID:          m.ID,
		Title:       m.Title,
		Overview:    m.Overview,
		PosterURL:   m.PosterURL,
		ReleaseDate: releaseDate,
		Runtime:     m.Runtime,
		Rating:      m.AverageRating(),
		RatingCount: m.RatingCount,
		Genres:      m.Genres,
	}
}

func ConvertFromMovieList(movies []*model.Movie) []MovieResponseDTO {
	dtos := make([]MovieResponseDTO, len(movies))
	for i, m := range movies {
		dtos[i] = ConvertFromMovie(m)
	}
	return dtos
}

func convertPlan(plan pagination.Plan) *PageDTO {
	return &PageDTO{
		Page:       plan.Page,
		TotalPages: plan.TotalPages,
		HasPrev:    plan.HasPrev,
		HasNext:    plan.HasNext,
		Window:     plan.Window,
	}
}

func convertReview(r model.Review) ReviewDTO {
	return ReviewDTO{
		UserID:    r.UserID,
		MovieID:   r.MovieID,
		Text:      r.Text,
		CreatedAt: r.CreatedAt,
	}
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

type Controller struct {
	movies *usecase_movie.Usecase
	search *usecase_search.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(movies *usecase_movie.Usecase,
	search *usecase_search.Usecase,
	opts ...ControllerOption) *Controller {
	c := &Controller{
		movies: movies,
		search: search,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	movies := router.Group("/movies")
	movies.GET("", c.getMovies)
	movies.GET("/search", c.searchMovies)
	movies.GET("/:movie_id", c.getMovie)

	router.GET("/genres", c.getGenres)
	router.GET("/years", c.getYears)
}

// @Summary Browse the catalog
// @Description Returns one page of movies ordered by release recency
// @Tags Movies operations
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size" default(20)
// @Success 200 {object} MoviesListResponseDTO "Page of movies"
// @Router /movies [get]
func (c *Controller) getMovies(ctx *gin.Context) {
	page := intQuery(ctx, "page", 1)
	perPage := intQuery(ctx, "per_page", pagination.DefaultPageSize)

	home := c.movies.HomePage(ctx.Request.Context(), page, perPage)

	ctx.JSON(http.StatusOK, MoviesListResponseDTO{
		Movies: ConvertFromMovieList(home.Movies),
		Total:  len(home.Movies),
		Page:   convertPlan(home.Plan),
	})
}

// @Summary Search movies
// @Description Searches by title term and optional genre, year and rating filters
// @Tags Movies operations
// @Produce json
// @Param term query string false "Title search term"
// @Param genre query string false "Genre name"
// @Param year query int false "Exact release year"
// @Param year_from query int false "Earliest release year"
// @Param year_to query int false "Latest release year"
// @Param min_rating query number false "Minimum average rating"
// @Param offset query int false "Result offset" default(0)
// @Param limit query int false "Result limit" default(20)
// @Success 200 {object} SearchResponseDTO "Matching movies"
// @Router /movies/search [get]
func (c *Controller) searchMovies(ctx *gin.Context) {
	filters := usecase_search.Filters{
		Term:         strQuery(ctx, "term"),
		Genre:        strQuery(ctx, "genre"),
		YearFrom:     intQueryPtr(ctx, "year_from"),
		YearTo:       intQueryPtr(ctx, "year_to"),
		MinAvgRating: floatQueryPtr(ctx, "min_rating"),
	}
	// A single year narrows both bounds to it.
	if year := intQueryPtr(ctx, "year"); year != nil {
		filters.YearFrom, filters.YearTo = year, year
	}
	offset := intQuery(ctx, "offset", 0)
	limit := intQuery(ctx, "limit", usecase_search.DefaultLimit)

	result := c.search.Search(ctx.Request.Context(), filters, offset, limit)

	// A ranked search that matches nothing retries as a substring scan, so
	// partial-word terms still find their movie.
	if result.Strategy == usecase_search.StrategyFullText && result.Total == 0 {
		result = c.search.SearchSubstring(ctx.Request.Context(), filters, offset, limit)
	}

	ctx.JSON(http.StatusOK, SearchResponseDTO{
		Movies:   ConvertFromMovieList(result.Movies),
		Total:    result.Total,
		Strategy: string(result.Strategy),
	})
}

// @Summary Movie details
// @Description Returns a movie with genres, credits, recent reviews and the viewer's own rating and review
// @Tags Movies operations
// @Produce json
// @Param movie_id path int true "Movie ID" example(603)
// @Success 200 {object} MovieDetailResponseDTO "Movie details"
// @Failure 400 {object} ErrorResponse "Invalid movie ID"
// @Failure 404 {object} ErrorResponse "Movie not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /movies/{movie_id} [get]
func (c *Controller) getMovie(ctx *gin.Context) {
	idParam := ctx.Param("movie_id")
	movieID, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		c.logger.Warn("invalid movie ID",
			slog.String("id", idParam),
			slog.String("error", err.Error()),
		)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid movie ID",
			Code:  http.StatusBadRequest,
		})
		return
	}

	detail, err := c.movies.Detail(ctx.Request.Context(), movieID, viewerID(ctx))
	if err != nil {
		if errors.Is(err, usecase_movie.ErrMovieNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{
				Error: "Movie not found",
				Code:  http.StatusNotFound,
			})
			return
		}

		c.logger.Error("failed to load movie",
			slog.String("error", err.Error()),
			slog.Int64("movie_id", movieID),
		)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to load movie",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusOK, convertDetail(detail))
}

func (c *Controller) getGenres(ctx *gin.Context) {
	genres := c.movies.Genres(ctx.Request.Context())

	dtos := make([]GenreDTO, len(genres))
	for i, g := range genres {
		dtos[i] = GenreDTO{ID: g.ID, Name: g.Name}
	}
	ctx.JSON(http.StatusOK, gin.H{"genres": dtos})
}

func (c *Controller) getYears(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"years": c.movies.Years(ctx.Request.Context())})
}

func convertDetail(detail usecase_movie.Detail) MovieDetailResponseDTO {
	dto := MovieDetailResponseDTO{
		Movie:   ConvertFromMovie(detail.Movie),
		Cast:    make([]PersonDTO, len(detail.Cast)),
		Crew:    make([]PersonDTO, len(detail.Crew)),
		Reviews: make([]ReviewDTO, len(detail.Reviews)),
	}

	for i, member := range detail.Cast {
		dto.Cast[i] = PersonDTO{Name: member.Name, Character: member.Character}
	}
	for i, member := range detail.Crew {
		dto.Crew[i] = PersonDTO{Name: member.Name, Job: member.Job, Department: member.Department}
	}
	if detail.Director != nil {
		dto.Director = &PersonDTO{
			Name:       detail.Director.Name,
			Job:        detail.Director.Job,
			Department: detail.Director.Department,
		}
	}
	for i, review := range detail.Reviews {
		dto.Reviews[i] = convertReview(review)
	}

	if detail.OwnRating != nil {
		dto.OwnRating = &detail.OwnRating.Score
	}
	if detail.OwnReview != nil {
		own := convertReview(*detail.OwnReview)
		dto.OwnReview = &own
	}

	return dto
}

// viewerID reads the optional caller identity from the X-User-ID header.
func viewerID(ctx *gin.Context) *model.UserID {
	raw := ctx.GetHeader("X-User-ID")
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}

func intQuery(ctx *gin.Context, key string, fallback int) int {
	raw := ctx.Query(key)
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return val
}

func strQuery(ctx *gin.Context, key string) *string {
	raw := ctx.Query(key)
	if raw == "" {
		return nil
	}
	return &raw
}

func intQueryPtr(ctx *gin.Context, key string) *int {
	raw := ctx.Query(key)
	if raw == "" {
		return nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &val
}

func floatQueryPtr(ctx *gin.Context, key string) *float64 {
	raw := ctx.Query(key)
	if raw == "" {
		return nil
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &val
}
