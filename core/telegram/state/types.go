package state

import tele "gopkg.in/telebot.v4"

// Mode identifies the active conversation mode of a user.
type Mode string

const (
	// ModeIdle indicates there is no active conversation with the user.
	ModeIdle Mode = "idle"
)

// Session stores the active mode and its payload for a single user.
// Payload holds mode-specific data such as quiz progress and is owned
// by the handler registered for the mode.
type Session struct {
	Mode    Mode
	Payload any
}

// Manager orchestrates user sessions and mode transitions. A user has at
// most one active mode at any time; entering a mode replaces the previous
// one together with its payload.
type Manager interface {
	Get(userID int64) Session
	Mode(userID int64) Mode
	Enter(userID int64, mode Mode, payload any)
	Update(userID int64, fn func(*Session))
	Clear(userID int64)

	InProgress(userID int64) bool

	// Do runs fn while holding the per-user lock, serializing concurrent
	// updates from the same user.
	Do(userID int64, fn func() error) error

	// ManagerHandler dispatches the update to the handler registered for
	// the user's current mode.
	ManagerHandler(c tele.Context) error
}
