package infra_mongo_castcrew

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/moviebase/core/internal/model"
)

const (
	castCollection = "cast"
	crewCollection = "crew"
)

// Driver reads credit documents keyed by movie_id. Credits are bulk-loaded
// from an external catalog dump and never mutated through this service.
type Driver struct {
	cast *mongo.Collection
	crew *mongo.Collection
}

func New(db *mongo.Database) *Driver {
	return &Driver{
		cast: db.Collection(castCollection),
		crew: db.Collection(crewCollection),
	}
}

type castDoc struct {
	MovieID   int64  `bson:"movie_id"`
	Name      string `bson:"name"`
	Character string `bson:"character"`
	Order     int    `bson:"order"`
}

type crewDoc struct {
	MovieID    int64  `bson:"movie_id"`
	Name       string `bson:"name"`
	Job        string `bson:"job"`
	Department string `bson:"department"`
}

func (d *Driver) Cast(ctx context.Context, movieID model.MovieID) ([]model.CastMember, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})

	cursor, err := d.cast.Find(ctx, bson.M{"movie_id": movieID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query cast: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []castDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode cast: %w", err)
	}

	members := make([]model.CastMember, len(docs))
	for i, doc := range docs {
		members[i] = model.CastMember{Name: doc.Name, Character: doc.Character}
	}
	return members, nil
}

func (d *Driver) Crew(ctx context.Context, movieID model.MovieID) ([]model.CrewMember, error) {
	cursor, err := d.crew.Find(ctx, bson.M{"movie_id": movieID})
	if err != nil {
		return nil, fmt.Errorf("failed to query crew: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []crewDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode crew: %w", err)
	}

	members := make([]model.CrewMember, len(docs))
	for i, doc := range docs {
		members[i] = model.CrewMember{Name: doc.Name, Job: doc.Job, Department: doc.Department}
	}
	return members, nil
}
