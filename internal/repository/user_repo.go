package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sebasotodlp/schoolar/internal/model"
)

// UserRepo handles MongoDB operations for admin accounts
type UserRepo interface {
	Create(ctx context.Context, user *model.AdminUser) error
	GetByID(ctx context.Context, id string) (*model.AdminUser, error)
	GetByEmail(ctx context.Context, email string) (*model.AdminUser, error)
	ListSecondaryByAdmin(ctx context.Context, adminID, schoolCode string) ([]*model.AdminUser, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error
}

type userRepo struct {
	collection *mongo.Collection
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *mongo.Database) UserRepo {
	return &userRepo{
		collection: db.Collection("users"),
	}
}

func (r *userRepo) Create(ctx context.Context, user *model.AdminUser) error {
	_, err := r.collection.InsertOne(ctx, user)
	return err
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*model.AdminUser, error) {
	var user model.AdminUser
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	var user model.AdminUser
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListSecondaryByAdmin filters by creator only; school and type are
// narrowed in memory to keep index requirements to single fields.
func (r *userRepo) ListSecondaryByAdmin(ctx context.Context, adminID, schoolCode string) ([]*model.AdminUser, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"createdBy": adminID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []*model.AdminUser
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	var out []*model.AdminUser
	for _, u := range users {
		if u.SchoolCode == schoolCode && u.UserType == model.UserTypeSecondary {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *userRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"passwordHash": passwordHash}})
	return err
}

func (r *userRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
