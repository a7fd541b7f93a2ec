package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is one profile document. Goals are ordered for display; at most
// one Goal per distinct name exists within a single user.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Age       int                `bson:"age" json:"age"`
	Gender    string             `bson:"gender" json:"gender"`
	Goals     []Goal             `bson:"goals" json:"goals"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// Goal groups saved tips under a name. Name is the merge key: exact
// byte equality, no trimming or case folding.
type Goal struct {
	Name       string     `bson:"name" json:"name"`
	SavedTasks []SavedTip `bson:"saved_tasks" json:"saved_tasks"`
}

// SavedTip is append-only once stored. All four fields are populated
// before a tip is appended; partial tips are rejected upstream.
type SavedTip struct {
	Title           string   `bson:"title" json:"title"`
	IconKeyword     string   `bson:"icon_keyword" json:"icon_keyword"`
	ExplanationLong string   `bson:"explanation_long" json:"explanation_long"`
	Steps           []string `bson:"steps" json:"steps"`
}

// FindGoal returns a pointer into u.Goals for the named goal, or nil if
// absent. Linear scan: goal cardinality per user stays in the single
// digits.
func (u *User) FindGoal(name string) *Goal {
	for i := range u.Goals {
		if u.Goals[i].Name == name {
			return &u.Goals[i]
		}
	}
	return nil
}
