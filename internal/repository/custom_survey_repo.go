package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sebasotodlp/schoolar/internal/model"
)

// CustomSurveyRepo handles MongoDB operations for school-authored surveys
type CustomSurveyRepo interface {
	Create(ctx context.Context, survey *model.CustomSurvey) error
	GetByID(ctx context.Context, id string) (*model.CustomSurvey, error)
	ListBySchool(ctx context.Context, schoolCode string) ([]*model.CustomSurvey, error)
	GetActiveByCode(ctx context.Context, surveyCode, schoolCode string) (*model.CustomSurvey, error)
	Update(ctx context.Context, survey *model.CustomSurvey) error
	Delete(ctx context.Context, id string) error
}

type customSurveyRepo struct {
	collection *mongo.Collection
}

// NewCustomSurveyRepo creates a new custom survey repository
func NewCustomSurveyRepo(db *mongo.Database) CustomSurveyRepo {
	return &customSurveyRepo{
		collection: db.Collection("custom_surveys"),
	}
}

func (r *customSurveyRepo) Create(ctx context.Context, survey *model.CustomSurvey) error {
	now := time.Now().UnixMilli()
	survey.CreatedAt = now
	survey.LastModified = now
	_, err := r.collection.InsertOne(ctx, survey)
	return err
}

func (r *customSurveyRepo) GetByID(ctx context.Context, id string) (*model.CustomSurvey, error) {
	var survey model.CustomSurvey
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&survey)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &survey, nil
}

func (r *customSurveyRepo) ListBySchool(ctx context.Context, schoolCode string) ([]*model.CustomSurvey, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"schoolCode": schoolCode})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var surveys []*model.CustomSurvey
	if err := cursor.All(ctx, &surveys); err != nil {
		return nil, err
	}
	return surveys, nil
}

// GetActiveByCode narrows school and active flag in memory over a single
// field query, same as the other repositories.
func (r *customSurveyRepo) GetActiveByCode(ctx context.Context, surveyCode, schoolCode string) (*model.CustomSurvey, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"surveyCode": surveyCode})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var surveys []*model.CustomSurvey
	if err := cursor.All(ctx, &surveys); err != nil {
		return nil, err
	}
	for _, s := range surveys {
		if s.SchoolCode == schoolCode && s.IsActive {
			return s, nil
		}
	}
	return nil, nil
}

func (r *customSurveyRepo) Update(ctx context.Context, survey *model.CustomSurvey) error {
	survey.LastModified = time.Now().UnixMilli()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": survey.ID}, survey)
	return err
}

func (r *customSurveyRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
