package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sebasotodlp/schoolar/internal/model"
)

// ResponseRepo handles MongoDB operations for survey responses
type ResponseRepo interface {
	Save(ctx context.Context, response *model.SurveyResponse) error
	ListBySchool(ctx context.Context, schoolCode string) ([]*model.SurveyResponse, error)
	ListBySurvey(ctx context.Context, schoolCode, surveyCode string) ([]*model.SurveyResponse, error)
	ListAll(ctx context.Context) ([]*model.SurveyResponse, error)
}

type responseRepo struct {
	collection *mongo.Collection
}

// NewResponseRepo creates a new response repository
func NewResponseRepo(db *mongo.Database) ResponseRepo {
	return &responseRepo{
		collection: db.Collection("responses"),
	}
}

func (r *responseRepo) Save(ctx context.Context, response *model.SurveyResponse) error {
	_, err := r.collection.InsertOne(ctx, response)
	return err
}

func (r *responseRepo) ListBySchool(ctx context.Context, schoolCode string) ([]*model.SurveyResponse, error) {
	return r.find(ctx, bson.M{"schoolCode": schoolCode})
}

// ListBySurvey filters by school code only and narrows the survey code
// in memory, so no composite index is ever required.
func (r *responseRepo) ListBySurvey(ctx context.Context, schoolCode, surveyCode string) ([]*model.SurveyResponse, error) {
	responses, err := r.find(ctx, bson.M{"schoolCode": schoolCode})
	if err != nil {
		return nil, err
	}
	var out []*model.SurveyResponse
	for _, resp := range responses {
		if resp.SurveyCode == surveyCode {
			out = append(out, resp)
		}
	}
	return out, nil
}

func (r *responseRepo) ListAll(ctx context.Context) ([]*model.SurveyResponse, error) {
	return r.find(ctx, bson.M{})
}

func (r *responseRepo) find(ctx context.Context, filter bson.M) ([]*model.SurveyResponse, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var responses []*model.SurveyResponse
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}
