package domain

import "time"

// Enum values accepted by profile validation.
var (
	Genders           = []string{"male", "female", "non-binary", "other"}
	RelationshipGoals = []string{"long-term", "casual-dating", "friendship", "not-sure-yet"}
	DrinkingHabits    = []string{"never", "rarely", "socially", "regularly"}
	SmokingHabits     = []string{"never", "socially", "regularly"}
	ChildrenPlans     = []string{"have", "want", "dont-want", "open"}
)

type Profile struct {
	ID               string    `json:"id" db:"id"`
	UserID           string    `json:"user_id" db:"user_id"`
	DisplayName      string    `json:"display_name" db:"display_name"`
	Age              int       `json:"age" db:"age"`
	Gender           string    `json:"gender" db:"gender"`
	Bio              *string   `json:"bio" db:"bio"`
	Occupation       *string   `json:"occupation" db:"occupation"`
	Education        *string   `json:"education" db:"education"`
	City             *string   `json:"city" db:"city"`
	Country          *string   `json:"country" db:"country"`
	RelationshipGoal *string   `json:"relationship_goal" db:"relationship_goal"`
	Drinking         *string   `json:"drinking" db:"drinking"`
	Smoking          *string   `json:"smoking" db:"smoking"`
	Children         *string   `json:"children" db:"children"`
	Passions         []string  `json:"passions" db:"passions"`
	ProfileComplete  bool      `json:"profile_complete" db:"profile_complete"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// CandidateFilter narrows the discover query. An empty Genders slice
// means no gender filter.
type CandidateFilter struct {
	ExcludeIDs []string
	MinAge     int
	MaxAge     int
	Genders    []string
	Limit      int
}
