package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ResultRepo stores each user's latest quiz result ids. One row per user;
// saving again replaces the previous run.
type ResultRepo interface {
	Save(ctx context.Context, userID string, resultIDs []string) error
	// Get returns nil (no error) when the user has no saved results.
	Get(ctx context.Context, userID string) ([]string, error)
}

type resultRepo struct {
	collection *mongo.Collection
}

// NewResultRepo creates a result repository backed by the userQuizResults
// collection.
func NewResultRepo(db *mongo.Database) ResultRepo {
	return &resultRepo{collection: db.Collection("userQuizResults")}
}

type userResultDoc struct {
	UserID    string    `bson:"_id"`
	ResultIDs []string  `bson:"resultIds"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func (r *resultRepo) Save(ctx context.Context, userID string, resultIDs []string) error {
	doc := userResultDoc{
		UserID:    userID,
		ResultIDs: resultIDs,
		UpdatedAt: time.Now().UTC(),
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": userID}, doc, opts)
	return err
}

func (r *resultRepo) Get(ctx context.Context, userID string) ([]string, error) {
	var doc userResultDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return doc.ResultIDs, nil
}
