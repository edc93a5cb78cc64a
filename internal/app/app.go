package app

import (
	"log/slog"
	"os"

	"github.com/moviebase/core/internal/config"
	http_init "github.com/moviebase/core/internal/delivery/http/init"
	http_movie "github.com/moviebase/core/internal/delivery/http/movie"
	http_profile "github.com/moviebase/core/internal/delivery/http/profile"
	http_rating "github.com/moviebase/core/internal/delivery/http/rating"
	http_review "github.com/moviebase/core/internal/delivery/http/review"
	infra_mongo_castcrew "github.com/moviebase/core/internal/infra/mongo/castcrew"
	infra_mongo_init "github.com/moviebase/core/internal/infra/mongo/init"
	infra_pg_init "github.com/moviebase/core/internal/infra/postgres/init"
	infra_postgres_genre "github.com/moviebase/core/internal/infra/postgres/genre"
	infra_postgres_movie "github.com/moviebase/core/internal/infra/postgres/movie"
	infra_postgres_profile "github.com/moviebase/core/internal/infra/postgres/profile"
	infra_postgres_rating "github.com/moviebase/core/internal/infra/postgres/rating"
	infra_postgres_review "github.com/moviebase/core/internal/infra/postgres/review"
	infra_redis_init "github.com/moviebase/core/internal/infra/redis/init"
	infra_movie_cache "github.com/moviebase/core/internal/infra/redis/moviecache"
	usecase_movie "github.com/moviebase/core/internal/usecase/movie"
	usecase_profile "github.com/moviebase/core/internal/usecase/profile"
	usecase_rating "github.com/moviebase/core/internal/usecase/rating"
	usecase_review "github.com/moviebase/core/internal/usecase/review"
	usecase_search "github.com/moviebase/core/internal/usecase/search"
)

func Go(cfg *config.Config) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)
	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	mongoDB := infra_mongo_init.MustEstablishConn(cfg.Mongo)

	movieRepository := infra_postgres_movie.New(pgConn)
	ratingRepository := infra_postgres_rating.New(pgConn)
	reviewRepository := infra_postgres_review.New(pgConn)
	profileRepository := infra_postgres_profile.New(pgConn)
	genreRepository := infra_postgres_genre.New(pgConn)
	castCrewRepository := infra_mongo_castcrew.New(mongoDB)
	movieCache := infra_movie_cache.New(redisConn)

	searchUC := usecase_search.New(movieRepository, logger)
	ratingUC := usecase_rating.New(ratingRepository, movieCache, logger)
	reviewUC := usecase_review.New(reviewRepository, logger)
	profileUC := usecase_profile.New(profileRepository, logger)
	movieUC := usecase_movie.New(
		movieRepository,
		genreRepository,
		reviewUC,
		ratingUC,
		castCrewRepository,
		movieCache,
		logger,
	)

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_movie.New(movieUC, searchUC, http_movie.WithLogger(logger)))
	controllerPool.Add(http_rating.New(ratingUC, http_rating.WithLogger(logger)))
	controllerPool.Add(http_review.New(reviewUC, http_review.WithLogger(logger)))
	controllerPool.Add(http_profile.New(profileUC, http_profile.WithLogger(logger)))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
