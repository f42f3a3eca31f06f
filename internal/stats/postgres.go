package stats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// PostgresRepository stores user records in the user_stats table. Maps live
// in JSONB columns; the best-score ordering for leaderboards is done with a
// JSONB key extraction in SQL.
type PostgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userStatColumns = `telegram_id, username, display_name, phone,
	tests_completed, total_points, best_scores, viewed_brands, last_activity`

func (r *PostgresRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*UserStat, error) {
	var stat UserStat
	query := fmt.Sprintf(`SELECT %s FROM user_stats WHERE telegram_id = $1`, userStatColumns)
	if err := r.db.GetContext(ctx, &stat, query, telegramID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user stat: %w", err)
	}
	return &stat, nil
}

func (r *PostgresRepository) Save(ctx context.Context, stat *UserStat) error {
	const query = `
		INSERT INTO user_stats (telegram_id, username, display_name, phone,
			tests_completed, total_points, best_scores, viewed_brands, last_activity)
		VALUES (:telegram_id, :username, :display_name, :phone,
			:tests_completed, :total_points, :best_scores, :viewed_brands, :last_activity)
		ON CONFLICT (telegram_id) DO UPDATE SET
			username = EXCLUDED.username,
			display_name = EXCLUDED.display_name,
			phone = EXCLUDED.phone,
			tests_completed = EXCLUDED.tests_completed,
			total_points = EXCLUDED.total_points,
			best_scores = EXCLUDED.best_scores,
			viewed_brands = EXCLUDED.viewed_brands,
			last_activity = EXCLUDED.last_activity`
	if _, err := r.db.NamedExecContext(ctx, query, stat); err != nil {
		return fmt.Errorf("save user stat: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Top(ctx context.Context, key string, limit int) ([]UserStat, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM user_stats
		WHERE COALESCE((best_scores->>$1)::int, 0) > 0
		ORDER BY (best_scores->>$1)::int DESC, last_activity ASC
		LIMIT $2`, userStatColumns)
	var out []UserStat
	if err := r.db.SelectContext(ctx, &out, query, key, limit); err != nil {
		return nil, fmt.Errorf("top by %s: %w", key, err)
	}
	return out, nil
}

func (r *PostgresRepository) FindByName(ctx context.Context, q string) ([]UserStat, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM user_stats
		WHERE username ILIKE $1 OR display_name ILIKE $1
		ORDER BY last_activity DESC
		LIMIT 20`, userStatColumns)
	pattern := "%" + strings.TrimSpace(q) + "%"
	var out []UserStat
	if err := r.db.SelectContext(ctx, &out, query, pattern); err != nil {
		return nil, fmt.Errorf("find by name %q: %w", q, err)
	}
	return out, nil
}

func (r *PostgresRepository) FindByPhone(ctx context.Context, phone string) (*UserStat, error) {
	var stat UserStat
	query := fmt.Sprintf(`SELECT %s FROM user_stats WHERE phone = $1`, userStatColumns)
	if err := r.db.GetContext(ctx, &stat, query, normalizePhone(phone)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find by phone: %w", err)
	}
	return &stat, nil
}

// normalizePhone keeps digits and a leading plus so stored and queried
// numbers compare equal regardless of spacing.
func normalizePhone(phone string) string {
	var b strings.Builder
	for i, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
