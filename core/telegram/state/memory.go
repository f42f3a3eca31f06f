package state

import (
	"log/slog"
	"sync"

	"barbot/core/logger"
	tghelpers "barbot/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

type userEntry struct {
	// busy serializes whole-update processing per user (see Do).
	busy sync.Mutex
	// mu guards the session fields only and is never held across handlers.
	mu      sync.Mutex
	session Session
}

type memoryManager struct {
	mu    sync.RWMutex
	users map[int64]*userEntry
}

// NewMemoryManager constructs an in-memory Manager implementation.
func NewMemoryManager() Manager {
	return &memoryManager{
		users: make(map[int64]*userEntry),
	}
}

func (m *memoryManager) entry(userID int64) *userEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.users[userID]
	if !ok {
		e = &userEntry{session: Session{Mode: ModeIdle}}
		m.users[userID] = e
	}
	return e
}

func (m *memoryManager) peek(userID int64) (*userEntry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.users[userID]
	return e, ok
}

// Get returns a copy of the user's session, or an idle session if none exists.
func (m *memoryManager) Get(userID int64) Session {
	e, ok := m.peek(userID)
	if !ok {
		return Session{Mode: ModeIdle}
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session
}

// Mode returns the current mode of a user, or ModeIdle if none exists.
func (m *memoryManager) Mode(userID int64) Mode {
	return m.Get(userID).Mode
}

// Enter switches the user into the given mode, replacing any previous
// mode and payload.
func (m *memoryManager) Enter(userID int64, mode Mode, payload any) {
	e := m.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.session = Session{Mode: mode, Payload: payload}
}

// Update applies fn to the user's session under the per-user lock.
func (m *memoryManager) Update(userID int64, fn func(*Session)) {
	if fn == nil {
		return
	}
	e := m.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(&e.session)
}

// Clear resets the user's session to idle and drops its payload.
func (m *memoryManager) Clear(userID int64) {
	e, ok := m.peek(userID)
	if !ok {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.session = Session{Mode: ModeIdle}
}

// InProgress reports whether the user currently has an active mode.
func (m *memoryManager) InProgress(userID int64) bool {
	return m.Mode(userID) != ModeIdle
}

// Do runs fn while holding the per-user lock so concurrent updates from
// the same user are processed one at a time. Session accessors remain
// usable inside fn.
func (m *memoryManager) Do(userID int64, fn func() error) error {
	if fn == nil {
		return nil
	}
	e := m.entry(userID)
	e.busy.Lock()
	defer e.busy.Unlock()
	return fn()
}

// ManagerHandler executes the handler registered for the user's current mode, if any.
func (m *memoryManager) ManagerHandler(c tele.Context) error {
	userID := c.Sender().ID
	current := m.Mode(userID)
	ctx := tghelpers.BuildContext(c)
	logger.Debug(ctx, "tg", "mode.dispatch",
		slog.String("status", "ok"),
		slog.Int64("user_id", userID),
		slog.String("mode", string(current)),
	)

	if handler, ok := modeHandlers[current]; ok {
		return handler(c)
	}
	return nil
}
