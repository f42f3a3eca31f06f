package stats

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryRepository keeps records in a map. Used in tests and when the bot
// runs without a database.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[int64]UserStat
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[int64]UserStat)}
}

func (r *MemoryRepository) GetByTelegramID(_ context.Context, telegramID int64) (*UserStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stat, ok := r.users[telegramID]
	if !ok {
		return nil, ErrNotFound
	}
	out := cloneStat(stat)
	return &out, nil
}

func (r *MemoryRepository) Save(_ context.Context, stat *UserStat) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[stat.TelegramID] = cloneStat(*stat)
	return nil
}

func (r *MemoryRepository) Top(_ context.Context, key string, limit int) ([]UserStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]UserStat, 0, len(r.users))
	for _, stat := range r.users {
		if stat.BestScores[key] > 0 {
			out = append(out, cloneStat(stat))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].BestScores[key] != out[j].BestScores[key] {
			return out[i].BestScores[key] > out[j].BestScores[key]
		}
		return out[i].LastActivity.Before(out[j].LastActivity)
	})
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryRepository) FindByName(_ context.Context, query string) ([]UserStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	var out []UserStat
	for _, stat := range r.users {
		if q == "" {
			continue
		}
		if strings.Contains(strings.ToLower(stat.Username), q) ||
			strings.Contains(strings.ToLower(stat.DisplayName), q) {
			out = append(out, cloneStat(stat))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastActivity.After(out[j].LastActivity)
	})
	return out, nil
}

func (r *MemoryRepository) FindByPhone(_ context.Context, phone string) (*UserStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	want := normalizePhone(phone)
	for _, stat := range r.users {
		if stat.Phone != "" && stat.Phone == want {
			out := cloneStat(stat)
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func cloneStat(s UserStat) UserStat {
	out := s
	out.BestScores = make(ScoreMap, len(s.BestScores))
	for k, v := range s.BestScores {
		out.BestScores[k] = v
	}
	out.ViewedBrands = make(StringSet, len(s.ViewedBrands))
	for k, v := range s.ViewedBrands {
		out.ViewedBrands[k] = v
	}
	return out
}
