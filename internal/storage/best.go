package storage

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// BestKeeper persists the best score of one game in a Store.
// Failures are logged and returned; callers are expected to carry on.
// A nil store keeps nothing.
type BestKeeper struct {
	store  *Store
	gameID string
	logger *log.Logger
}

// NewBestKeeper binds store to gameID. logger may be nil.
func NewBestKeeper(store *Store, gameID string, logger *log.Logger) *BestKeeper {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &BestKeeper{store: store, gameID: gameID, logger: logger}
}

// LoadBest returns the stored best. A store without a best-score row falls
// back to the run history so older databases keep their record.
func (k *BestKeeper) LoadBest() (int, error) {
	if k.store == nil {
		return 0, nil
	}
	best, err := k.store.BestScore(k.gameID)
	if err != nil {
		k.logger.Warn("cannot load best score", "game", k.gameID, "err", err)
		return 0, err
	}
	if best > 0 {
		return best, nil
	}
	high, err := k.store.HighScore(k.gameID)
	if err != nil {
		k.logger.Warn("cannot load high score", "game", k.gameID, "err", err)
		return 0, err
	}
	return high, nil
}

// SaveBest stores score if it beats the stored best.
func (k *BestKeeper) SaveBest(score int) error {
	if k.store == nil {
		return nil
	}
	updated, err := k.store.SetBestScore(k.gameID, score)
	if err != nil {
		k.logger.Warn("cannot save best score", "game", k.gameID, "score", score, "err", err)
		return err
	}
	if updated {
		k.logger.Debug("best score saved", "game", k.gameID, "score", score)
	}
	return nil
}

var _ flappy.ScoreKeeper = (*BestKeeper)(nil)

// RecordRun saves a finished run when there is a store and the run scored.
// Failures are logged.
func RecordRun(store *Store, gameID string, run Run, logger *log.Logger) {
	if store == nil || run.Score <= 0 {
		return
	}
	if _, err := store.SaveRun(gameID, run); err != nil && logger != nil {
		logger.Warn("cannot save run", "game", gameID, "err", err)
	}
}
