package infra_movie_cache

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/go-redis/redis"

	"github.com/moviebase/core/internal/model"
)

const defaultTTL = 15 * time.Minute

// Driver is a cache-aside store for movie rows. Misses and broken payloads
// both read as "not cached"; the caller falls back to the database either way.
type Driver struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client) *Driver {
	return &Driver{
		client: client,
		ttl:    defaultTTL,
	}
}

func (d *Driver) Get(movieID model.MovieID) (*model.Movie, bool) {
	payload, err := d.client.Get(key(movieID)).Result()
	if err != nil {
		return nil, false
	}

	var movie model.Movie
	if err := json.Unmarshal([]byte(payload), &movie); err != nil {
		return nil, false
	}

	return &movie, true
}

func (d *Driver) Set(movie *model.Movie) {
	if movie == nil {
		return
	}

	payload, err := json.Marshal(movie)
	if err != nil {
		return
	}

	_ = d.client.Set(key(movie.ID), string(payload), d.ttl).Err()
}

// Invalidate drops the cached row after a rating write changes its aggregate.
func (d *Driver) Invalidate(movieID model.MovieID) {
	_ = d.client.Del(key(movieID)).Err()
}

func key(movieID model.MovieID) string {
	return "movie:" + strconv.FormatInt(movieID, 10)
}
