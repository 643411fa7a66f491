package domain

import "time"

// Default preference values, materialized on read when no row exists.
const (
	DefaultMinAge      = 18
	DefaultMaxAge      = 99
	DefaultMaxDistance = 100
)

type Preferences struct {
	ProfileID    string    `json:"profile_id" db:"profile_id"`
	MinAge       int       `json:"min_age" db:"min_age"`
	MaxAge       int       `json:"max_age" db:"max_age"`
	InterestedIn []string  `json:"interested_in" db:"interested_in"`
	MaxDistance  int       `json:"max_distance" db:"max_distance"`
	ShowMe       bool      `json:"show_me" db:"show_me"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// DefaultPreferences returns the unstored defaults for a profile.
func DefaultPreferences(profileID string) *Preferences {
	return &Preferences{
		ProfileID:    profileID,
		MinAge:       DefaultMinAge,
		MaxAge:       DefaultMaxAge,
		InterestedIn: []string{},
		MaxDistance:  DefaultMaxDistance,
		ShowMe:       true,
	}
}
