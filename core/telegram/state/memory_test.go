package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modeSearch Mode = "search"

func TestMemoryManagerDefaults(t *testing.T) {
	m := NewMemoryManager()

	sess := m.Get(1)
	assert.Equal(t, ModeIdle, sess.Mode)
	assert.Nil(t, sess.Payload)
	assert.False(t, m.InProgress(1))
}

func TestMemoryManagerEnterReplacesPayload(t *testing.T) {
	m := NewMemoryManager()

	m.Enter(7, modeSearch, "first")
	require.True(t, m.InProgress(7))
	assert.Equal(t, modeSearch, m.Mode(7))

	m.Enter(7, Mode("quiz"), 42)
	sess := m.Get(7)
	assert.Equal(t, Mode("quiz"), sess.Mode)
	assert.Equal(t, 42, sess.Payload)
}

func TestMemoryManagerUpdate(t *testing.T) {
	m := NewMemoryManager()
	m.Enter(3, modeSearch, 0)

	m.Update(3, func(s *Session) {
		s.Payload = s.Payload.(int) + 1
	})
	m.Update(3, func(s *Session) {
		s.Payload = s.Payload.(int) + 1
	})

	assert.Equal(t, 2, m.Get(3).Payload)
}

func TestMemoryManagerClear(t *testing.T) {
	m := NewMemoryManager()
	m.Enter(5, modeSearch, "query")

	m.Clear(5)

	sess := m.Get(5)
	assert.Equal(t, ModeIdle, sess.Mode)
	assert.Nil(t, sess.Payload)
	assert.False(t, m.InProgress(5))
}

func TestMemoryManagerDoSerializesPerUser(t *testing.T) {
	m := NewMemoryManager()
	m.Enter(9, modeSearch, 0)

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_ = m.Do(9, func() error {
				// Read-modify-write is only safe when Do serializes callers.
				n := m.Get(9).Payload.(int)
				m.Update(9, func(s *Session) { s.Payload = n + 1 })
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, m.Get(9).Payload)
}

func TestMemoryManagerDoAllowsSessionAccess(t *testing.T) {
	m := NewMemoryManager()

	err := m.Do(11, func() error {
		m.Enter(11, modeSearch, "inside")
		m.Clear(11)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, ModeIdle, m.Mode(11))
}
