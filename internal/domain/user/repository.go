package user

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound = errors.New("user not found")
	ErrStore    = errors.New("store unavailable")
)

type Repository interface {
	Create(ctx context.Context, u User) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (User, error)
	Update(ctx context.Context, u User) error
}
