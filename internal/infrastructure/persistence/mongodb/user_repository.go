package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"welltips/internal/domain/user"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type userRepository struct {
	col *mongo.Collection
}

func NewUserRepository(col *mongo.Collection) user.Repository {
	if col == nil {
		return nil
	}
	return &userRepository{col: col}
}

func (r *userRepository) Create(ctx context.Context, u user.User) (primitive.ObjectID, error) {
	if r == nil || r.col == nil {
		return primitive.NilObjectID, fmt.Errorf("%w: nil repository", user.ErrStore)
	}

	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	if u.Goals == nil {
		u.Goals = []user.Goal{}
	}

	if _, err := r.col.InsertOne(ctx, u); err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: insert user: %v", user.ErrStore, err)
	}
	return u.ID, nil
}

func (r *userRepository) GetByID(ctx context.Context, id primitive.ObjectID) (user.User, error) {
	if r == nil || r.col == nil {
		return user.User{}, fmt.Errorf("%w: nil repository", user.ErrStore)
	}

	var u user.User
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return user.User{}, user.ErrNotFound
	}
	if err != nil {
		return user.User{}, fmt.Errorf("%w: find user: %v", user.ErrStore, err)
	}
	return u, nil
}

// Update replaces the whole document. The read-modify-write sequence
// around it is last-write-wins under concurrent savers.
func (r *userRepository) Update(ctx context.Context, u user.User) error {
	if r == nil || r.col == nil {
		return fmt.Errorf("%w: nil repository", user.ErrStore)
	}

	u.UpdatedAt = time.Now().UTC()
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": u.ID}, u)
	if err != nil {
		return fmt.Errorf("%w: replace user: %v", user.ErrStore, err)
	}
	if res.MatchedCount == 0 {
		return user.ErrNotFound
	}
	return nil
}

var _ user.Repository = (*userRepository)(nil)
