package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/noadjamila/TechStudyFinder-sub000/internal/model"
)

// CatalogRepo is the read-only study programme catalog. All queries are
// side-effect free, so the filtering pipeline stays idempotent.
type CatalogRepo interface {
	AllIDs(ctx context.Context) ([]string, error)
	IDsByStudyType(ctx context.Context, studyType string) ([]string, error)
	TraitTagsByIDs(ctx context.Context, ids []string) (map[string][]model.RiasecType, error)
	VectorsByIDs(ctx context.Context, ids []string) (map[string]model.ScoreVector, error)
	GetByID(ctx context.Context, id string) (*model.StudyProgramme, error)
}

type catalogRepo struct {
	collection *mongo.Collection
}

// NewCatalogRepo creates a catalog repository backed by the programmes
// collection.
func NewCatalogRepo(db *mongo.Database) CatalogRepo {
	return &catalogRepo{collection: db.Collection("programmes")}
}

func (r *catalogRepo) AllIDs(ctx context.Context) ([]string, error) {
	return r.idsByFilter(ctx, bson.M{})
}

func (r *catalogRepo) IDsByStudyType(ctx context.Context, studyType string) ([]string, error) {
	return r.idsByFilter(ctx, bson.M{"studyType": studyType})
}

func (r *catalogRepo) idsByFilter(ctx context.Context, filter bson.M) ([]string, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID string `bson:"_id"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	return ids, nil
}

func (r *catalogRepo) TraitTagsByIDs(ctx context.Context, ids []string) (map[string][]model.RiasecType, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1, "traitTags": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID        string             `bson:"_id"`
		TraitTags []model.RiasecType `bson:"traitTags"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	tags := make(map[string][]model.RiasecType, len(rows))
	for _, row := range rows {
		tags[row.ID] = row.TraitTags
	}
	return tags, nil
}

func (r *catalogRepo) VectorsByIDs(ctx context.Context, ids []string) (map[string]model.ScoreVector, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1, "riasec": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID     string            `bson:"_id"`
		Riasec model.ScoreVector `bson:"riasec"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	vectors := make(map[string]model.ScoreVector, len(rows))
	for _, row := range rows {
		vectors[row.ID] = row.Riasec
	}
	return vectors, nil
}

func (r *catalogRepo) GetByID(ctx context.Context, id string) (*model.StudyProgramme, error) {
	var programme model.StudyProgramme
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&programme)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &programme, nil
}
