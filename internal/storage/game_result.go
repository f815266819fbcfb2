package storage

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// GameResult records one finished game round.
type GameResult struct {
	ID           uint   `gorm:"primaryKey"`
	RoundID      string `gorm:"index"`
	GameKind     string `gorm:"not null;index"`
	Score        int    `gorm:"not null"`
	CorrectCount int    `gorm:"not null"`
	TotalItems   int    `gorm:"not null"`
	DurationSecs int    `gorm:"not null"`
	EndedReason  string `gorm:"not null"`
	CreatedAt    time.Time
}

// GameResultRepo appends and queries game round history.
type GameResultRepo interface {
	// Append stores a finished round.
	Append(res *GameResult) error

	// Recent returns the most recent rounds, newest first.
	Recent(limit int) ([]GameResult, error)
}

type gameResultRepo struct {
	db *gorm.DB
}

func (r *gameResultRepo) Append(res *GameResult) error {
	if err := r.db.Create(res).Error; err != nil {
		return fmt.Errorf("append game result: %w", err)
	}
	return nil
}

func (r *gameResultRepo) Recent(limit int) ([]GameResult, error) {
	var out []GameResult
	q := r.db.Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("query game results: %w", err)
	}
	return out, nil
}
