package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/noadjamila/TechStudyFinder-sub000/internal/model"
)

// QuestionRepo serves the level-2 question bank.
type QuestionRepo interface {
	ListLevel2(ctx context.Context) ([]model.Question, error)
}

type questionRepo struct {
	collection *mongo.Collection
}

// NewQuestionRepo creates a question repository backed by the questions
// collection.
func NewQuestionRepo(db *mongo.Database) QuestionRepo {
	return &questionRepo{collection: db.Collection("questions")}
}

func (r *questionRepo) ListLevel2(ctx context.Context) ([]model.Question, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"level": model.Level2})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []model.Question
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}
