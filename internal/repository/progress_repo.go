package repository

import (
	"context"
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sixfactors/internal/model"
)

// Config holds the MongoDB connection settings.
type Config struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

// ProgressRepo is the user progress store. One document per user id, created
// implicitly by the first answer write.
type ProgressRepo interface {
	// LastQuestionID returns the index of the most recently answered
	// question, or model.NoProgress when the user has no record yet.
	LastQuestionID(ctx context.Context, userID string) (int, error)

	// SaveAnswer merges {lastQuestionId, answers.<questionID>} into the
	// user's record, creating it if absent. Fields not named in the patch
	// are left untouched.
	SaveAnswer(ctx context.Context, userID string, questionID, answerCode int) error

	// Get returns the full progress record, or nil when absent. Serves the
	// progress inspection endpoint; the webhook handlers only ever need
	// the projected last question id.
	Get(ctx context.Context, userID string) (*model.UserProgress, error)
}

type progressRepo struct {
	collection *mongo.Collection
}

// NewProgressRepo creates the Mongo-backed progress repository over the
// "answers" collection.
func NewProgressRepo(db *mongo.Database) ProgressRepo {
	return &progressRepo{
		collection: db.Collection("answers"),
	}
}

func (r *progressRepo) LastQuestionID(ctx context.Context, userID string) (int, error) {
	opts := options.FindOne().SetProjection(bson.M{"lastQuestionId": 1})

	var record struct {
		LastQuestionID *int `bson:"lastQuestionId"`
	}

	err := r.collection.FindOne(ctx, bson.M{"_id": userID}, opts).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return model.NoProgress, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read last question id: %w", err)
	}

	// A record written by an older revision may miss the field.
	if record.LastQuestionID == nil {
		return model.NoProgress, nil
	}

	return *record.LastQuestionID, nil
}

func (r *progressRepo) SaveAnswer(ctx context.Context, userID string, questionID, answerCode int) error {
	patch := bson.M{
		"lastQuestionId": questionID,
		"answers." + strconv.Itoa(questionID): answerCode,
	}

	opts := options.Update().SetUpsert(true)

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": patch}, opts)
	if err != nil {
		return fmt.Errorf("failed to save answer: %w", err)
	}

	return nil
}

func (r *progressRepo) Get(ctx context.Context, userID string) (*model.UserProgress, error) {
	var progress model.UserProgress

	err := r.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&progress)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read progress: %w", err)
	}

	return &progress, nil
}
