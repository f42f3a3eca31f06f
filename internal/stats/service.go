package stats

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"barbot/core/logger"
)

// Service implements the statistics operations on top of a Repository.
// Every event refreshes the stored profile and last_activity.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// RecordView marks a brand card as viewed by the user.
func (s *Service) RecordView(ctx context.Context, profile Profile, category, brand string) error {
	stat, err := s.load(ctx, profile)
	if err != nil {
		return err
	}
	stat.ViewedBrands[ViewKey(category, brand)] = true
	if err := s.repo.Save(ctx, stat); err != nil {
		return err
	}
	logger.LogEvent(ctx, logger.SVCStats, slog.LevelDebug, "stats.view",
		slog.Int64("user_id", profile.TelegramID),
		slog.String("brand", brand),
		slog.String("category", category))
	return nil
}

// RecordResult stores a finished game. Total points always grow; the best
// score for the game updates only when the new score is strictly greater.
func (s *Service) RecordResult(ctx context.Context, profile Profile, kind, setID string, score, total int) error {
	stat, err := s.load(ctx, profile)
	if err != nil {
		return err
	}
	key := BestKey(kind, setID)
	stat.TestsCompleted++
	stat.TotalPoints += score
	improved := score > stat.BestScores[key]
	if improved {
		stat.BestScores[key] = score
	}
	if err := s.repo.Save(ctx, stat); err != nil {
		return err
	}
	logger.LogEvent(ctx, logger.SVCStats, slog.LevelInfo, "stats.result",
		slog.Int64("user_id", profile.TelegramID),
		slog.String("game", key),
		slog.Int("score", score),
		slog.Int("total", total),
		slog.Bool("best", improved))
	return nil
}

// Top returns the leaderboard for one game, highest best score first.
func (s *Service) Top(ctx context.Context, kind, setID string, n int) ([]UserStat, error) {
	if n <= 0 {
		n = 10
	}
	return s.repo.Top(ctx, BestKey(kind, setID), n)
}

// GetUserByTelegramID looks a user up by id.
func (s *Service) GetUserByTelegramID(ctx context.Context, telegramID int64) (*UserStat, error) {
	return s.repo.GetByTelegramID(ctx, telegramID)
}

// FindByName returns users whose username or display name contains the
// query. Multiple matches are returned for a follow-up selection.
func (s *Service) FindByName(ctx context.Context, query string) ([]UserStat, error) {
	return s.repo.FindByName(ctx, query)
}

// FindByPhone looks a user up by their shared contact number.
func (s *Service) FindByPhone(ctx context.Context, phone string) (*UserStat, error) {
	return s.repo.FindByPhone(ctx, phone)
}

// SetPhone stores the phone from a shared contact.
func (s *Service) SetPhone(ctx context.Context, profile Profile, phone string) error {
	stat, err := s.load(ctx, profile)
	if err != nil {
		return err
	}
	stat.Phone = normalizePhone(phone)
	return s.repo.Save(ctx, stat)
}

// load fetches the record, creating a fresh one on first contact, and
// merges the profile snapshot.
func (s *Service) load(ctx context.Context, profile Profile) (*UserStat, error) {
	if profile.TelegramID == 0 {
		return nil, fmt.Errorf("stats: profile without telegram id")
	}
	stat, err := s.repo.GetByTelegramID(ctx, profile.TelegramID)
	if errors.Is(err, ErrNotFound) {
		stat = &UserStat{TelegramID: profile.TelegramID}
	} else if err != nil {
		return nil, err
	}
	if stat.BestScores == nil {
		stat.BestScores = ScoreMap{}
	}
	if stat.ViewedBrands == nil {
		stat.ViewedBrands = StringSet{}
	}
	if profile.Username != "" {
		stat.Username = profile.Username
	}
	if profile.DisplayName != "" {
		stat.DisplayName = profile.DisplayName
	}
	if profile.Phone != "" {
		stat.Phone = normalizePhone(profile.Phone)
	}
	stat.LastActivity = s.now()
	return stat, nil
}
