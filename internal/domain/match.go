package domain

import "time"

// Match statuses. A row starts pending when one side acts first;
// matched and rejected are terminal.
const (
	MatchStatusPending  = "pending"
	MatchStatusMatched  = "matched"
	MatchStatusRejected = "rejected"
)

// Match records one profile's action toward another. User1ID is always
// the profile that acted first; the unordered pair is unique.
type Match struct {
	ID          string    `json:"id" db:"id"`
	User1ID     string    `json:"user1_id" db:"user1_id"`
	User2ID     string    `json:"user2_id" db:"user2_id"`
	Status      string    `json:"status" db:"status"`
	Icebreakers []string  `json:"icebreakers,omitempty" db:"icebreakers"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

func (m *Match) HasUser(profileID string) bool {
	return m.User1ID == profileID || m.User2ID == profileID
}

func (m *Match) OtherUserID(profileID string) (string, bool) {
	if m.User1ID == profileID {
		return m.User2ID, true
	}
	if m.User2ID == profileID {
		return m.User1ID, true
	}
	return "", false
}

// Terminal reports whether the row can still transition.
func (m *Match) Terminal() bool {
	return m.Status == MatchStatusMatched || m.Status == MatchStatusRejected
}
