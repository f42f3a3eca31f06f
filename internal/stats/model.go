// Package stats tracks per-user activity: viewed brand cards, completed
// games, cumulative points and the best score per game. The storage port has
// a Postgres implementation and an in-memory one with identical semantics.
package stats

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned by lookups that match no user.
var ErrNotFound = errors.New("stats: user not found")

// ScoreMap stores best scores keyed by "kind:set". Serialized as JSONB.
type ScoreMap map[string]int

// StringSet stores membership keys (viewed brands). Serialized as JSONB.
type StringSet map[string]bool

// UserStat is one user's accumulated record.
type UserStat struct {
	TelegramID     int64     `db:"telegram_id"`
	Username       string    `db:"username"`
	DisplayName    string    `db:"display_name"`
	Phone          string    `db:"phone"`
	TestsCompleted int       `db:"tests_completed"`
	TotalPoints    int       `db:"total_points"`
	BestScores     ScoreMap  `db:"best_scores"`
	ViewedBrands   StringSet `db:"viewed_brands"`
	LastActivity   time.Time `db:"last_activity"`
}

// Profile is the identity snapshot carried by every incoming update. It is
// merged into the stored record on each event.
type Profile struct {
	TelegramID  int64
	Username    string
	DisplayName string
	Phone       string
}

// BestKey builds the best-score key for a game kind and set.
func BestKey(kind, setID string) string {
	return kind + ":" + setID
}

// ViewKey builds the viewed-brand membership key.
func ViewKey(category, brand string) string {
	return category + "|" + brand
}

func (m ScoreMap) Value() (driver.Value, error) {
	if m == nil {
		m = ScoreMap{}
	}
	return json.Marshal(m)
}

func (m *ScoreMap) Scan(src any) error {
	return scanJSON(src, m)
}

func (s StringSet) Value() (driver.Value, error) {
	if s == nil {
		s = StringSet{}
	}
	return json.Marshal(s)
}

func (s *StringSet) Scan(src any) error {
	return scanJSON(src, s)
}

func scanJSON(src, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("stats: cannot scan %T into JSON column", src)
	}
}
