package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/noadjamila/TechStudyFinder-sub000/internal/config"
	"github.com/noadjamila/TechStudyFinder-sub000/internal/model"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDatabase)

	if err := seedProgrammes(ctx, db); err != nil {
		log.Fatalf("Failed to seed programmes: %v", err)
	}
	if err := seedQuestions(ctx, db); err != nil {
		log.Fatalf("Failed to seed questions: %v", err)
	}

	log.Println("Seed complete")
}

func seedProgrammes(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection("programmes")
	if err := coll.Drop(ctx); err != nil {
		return err
	}

	programmes := []model.StudyProgramme{
		{
			ID:         "sg-001",
			Name:       "Informatik",
			University: "TU Berlin",
			Degree:     "B.Sc.",
			StudyType:  model.StudyTypeUndergraduate,
			TraitTags:  []model.RiasecType{model.TypeI, model.TypeR, model.TypeC},
			Riasec:     model.ScoreVector{model.TypeR: 4, model.TypeI: 5, model.TypeA: 2, model.TypeS: 1, model.TypeE: 2, model.TypeC: 4},
		},
		{
			ID:         "sg-002",
			Name:       "Medieninformatik",
			University: "HTW Berlin",
			Degree:     "B.Sc.",
			StudyType:  model.StudyTypeUndergraduate,
			TraitTags:  []model.RiasecType{model.TypeI, model.TypeA, model.TypeR},
			Riasec:     model.ScoreVector{model.TypeR: 3, model.TypeI: 4, model.TypeA: 5, model.TypeS: 2, model.TypeE: 2, model.TypeC: 3},
		},
		{
			ID:         "sg-003",
			Name:       "Wirtschaftsinformatik",
			University: "Uni Potsdam",
			Degree:     "B.Sc.",
			StudyType:  model.StudyTypeUndergraduate,
			TraitTags:  []model.RiasecType{model.TypeE, model.TypeC, model.TypeI},
			Riasec:     model.ScoreVector{model.TypeR: 2, model.TypeI: 4, model.TypeA: 1, model.TypeS: 2, model.TypeE: 5, model.TypeC: 5},
		},
		{
			ID:         "sg-004",
			Name:       "Data Science",
			University: "TU München",
			Degree:     "M.Sc.",
			StudyType:  model.StudyTypeGraduate,
			TraitTags:  []model.RiasecType{model.TypeI, model.TypeC, model.TypeR},
			Riasec:     model.ScoreVector{model.TypeR: 3, model.TypeI: 5, model.TypeA: 1, model.TypeS: 1, model.TypeE: 2, model.TypeC: 5},
		},
		{
			ID:         "sg-005",
			Name:       "Human-Computer Interaction",
			University: "Uni Hamburg",
			Degree:     "M.Sc.",
			StudyType:  model.StudyTypeGraduate,
			TraitTags:  []model.RiasecType{model.TypeA, model.TypeS, model.TypeI},
			Riasec:     model.ScoreVector{model.TypeR: 2, model.TypeI: 4, model.TypeA: 5, model.TypeS: 4, model.TypeE: 2, model.TypeC: 2},
		},
		{
			ID:         "sg-006",
			Name:       "IT-Management",
			University: "FH Aachen",
			Degree:     "M.Sc.",
			StudyType:  model.StudyTypeGraduate,
			TraitTags:  []model.RiasecType{model.TypeE, model.TypeS, model.TypeC},
			Riasec:     model.ScoreVector{model.TypeR: 1, model.TypeI: 3, model.TypeA: 2, model.TypeS: 4, model.TypeE: 5, model.TypeC: 4},
		},
	}

	docs := make([]interface{}, len(programmes))
	for i, p := range programmes {
		docs[i] = p
	}
	_, err := coll.InsertMany(ctx, docs)
	return err
}

func seedQuestions(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection("questions")
	if err := coll.Drop(ctx); err != nil {
		return err
	}

	questions := []struct {
		text string
		typ  model.RiasecType
	}{
		{"Ich repariere gerne Geräte oder Maschinen.", model.TypeR},
		{"Ich arbeite gerne mit Werkzeugen und Technik.", model.TypeR},
		{"Ich gehe Problemen gerne auf den Grund.", model.TypeI},
		{"Ich experimentiere gerne, um etwas Neues herauszufinden.", model.TypeI},
		{"Ich gestalte gerne Dinge nach eigenen Ideen.", model.TypeA},
		{"Ich drücke mich gerne kreativ aus.", model.TypeA},
		{"Ich helfe anderen gerne bei ihren Problemen.", model.TypeS},
		{"Ich arbeite gerne im Team mit anderen Menschen.", model.TypeS},
		{"Ich übernehme gerne die Leitung in einer Gruppe.", model.TypeE},
		{"Ich überzeuge andere gerne von meinen Ideen.", model.TypeE},
		{"Ich arbeite gerne strukturiert nach klaren Vorgaben.", model.TypeC},
		{"Ich halte gerne Ordnung in Daten und Unterlagen.", model.TypeC},
	}

	docs := make([]interface{}, len(questions))
	for i, q := range questions {
		docs[i] = bson.M{
			"_id":        fmt.Sprintf("q-%02d", i+1),
			"level":      model.Level2,
			"text":       q.text,
			"riasecType": q.typ,
		}
	}
	_, err := coll.InsertMany(ctx, docs)
	return err
}
