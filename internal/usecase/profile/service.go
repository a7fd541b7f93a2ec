// Package profile owns the user document lifecycle: profile creation,
// the find-or-create goal merge, and saved-tip reads.
package profile

import (
	"context"

	"welltips/internal/domain/user"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultGoalName is used when a save request names no goal and the
// user has no goals to fall back to.
const DefaultGoalName = "general"

type Service struct {
	users user.Repository
}

func NewService(users user.Repository) *Service {
	return &Service{users: users}
}

// CreateProfile stores a new user document and returns its id as a hex
// string. A non-empty goal seeds one Goal with no saved tasks.
func (s *Service) CreateProfile(ctx context.Context, age int, gender, goal string) (string, error) {
	u := user.User{
		Age:    age,
		Gender: gender,
		Goals:  []user.Goal{},
	}
	if goal != "" {
		u.Goals = append(u.Goals, user.Goal{Name: goal, SavedTasks: []user.SavedTip{}})
	}

	id, err := s.users.Create(ctx, u)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

// SaveTip appends tip under the named goal, creating the goal at the
// end of the user's goal list if it does not exist. Goal names match by
// exact byte equality. An empty goalName falls back to the user's first
// goal, or to DefaultGoalName for a user with no goals. Returns the
// goal name actually used.
//
// The read-modify-write over the whole document is last-write-wins when
// two savers race on one user; accepted limitation at this layer.
func (s *Service) SaveTip(ctx context.Context, userID, goalName string, tip user.SavedTip) (string, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return "", user.ErrNotFound
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	if goalName == "" {
		if len(u.Goals) > 0 {
			goalName = u.Goals[0].Name
		} else {
			goalName = DefaultGoalName
		}
	}

	g := u.FindGoal(goalName)
	if g == nil {
		u.Goals = append(u.Goals, user.Goal{Name: goalName, SavedTasks: []user.SavedTip{}})
		g = &u.Goals[len(u.Goals)-1]
	}
	g.SavedTasks = append(g.SavedTasks, tip)

	if err := s.users.Update(ctx, u); err != nil {
		return "", err
	}
	return goalName, nil
}

// GetSavedTips returns the user's goals in stored order. Read-only.
func (s *Service) GetSavedTips(ctx context.Context, userID string) ([]user.Goal, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, user.ErrNotFound
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.Goals == nil {
		return []user.Goal{}, nil
	}
	return u.Goals, nil
}
