package stats

import "context"

// Repository is the storage port for user records. Save is an upsert keyed
// by telegram id.
type Repository interface {
	GetByTelegramID(ctx context.Context, telegramID int64) (*UserStat, error)
	Save(ctx context.Context, stat *UserStat) error
	// Top returns users ordered by the best score stored under key,
	// highest first, zero scores excluded.
	Top(ctx context.Context, key string, limit int) ([]UserStat, error)
	FindByName(ctx context.Context, query string) ([]UserStat, error)
	FindByPhone(ctx context.Context, phone string) (*UserStat, error)
}
