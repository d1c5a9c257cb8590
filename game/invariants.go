package game

import (
	"errors"
	"fmt"
	"math"

	"github.com/plus3/ballplayer/ecs"
)

// DirectionTolerance is how far a normalized heading may drift from unit length.
const DirectionTolerance = 1e-9

var (
	ErrPlayerCount = errors.New("game: player count")
	ErrEnemyCount  = errors.New("game: enemy count")
	ErrOutOfBounds = errors.New("game: entity out of bounds")
	ErrDirection   = errors.New("game: direction not normalized")
)

// CheckInvariants verifies the state after a complete frame: exactly one player,
// enemies equal to enemyCount, every heading of length 1 or 0 and, when window is
// non-nil, every confined entity inside its inset bounds.
func CheckInvariants(storage *ecs.Storage, window *Window, enemyCount int) error {
	var errs []error

	stats := storage.CollectStats()
	if stats.PlayerCount != 1 {
		errs = append(errs, fmt.Errorf("%w: got %d, want 1", ErrPlayerCount, stats.PlayerCount))
	}
	if stats.EnemyCount != enemyCount {
		errs = append(errs, fmt.Errorf("%w: got %d, want %d", ErrEnemyCount, stats.EnemyCount, enemyCount))
	}

	for id, entity := range storage.Iter() {
		if entity.Enemy != nil {
			length := entity.Enemy.Direction.Length()
			if length != 0 && math.Abs(length-1) > DirectionTolerance {
				errs = append(errs, fmt.Errorf("%w: entity %d has length %g", ErrDirection, id, length))
			}
		}

		if window != nil && entity.Confined != nil {
			bb := window.InsetBounds(entity.Sprite.Size)
			if !Contains(bb, entity.Transform.Translation) {
				errs = append(errs, fmt.Errorf("%w: entity %d at (%g, %g)", ErrOutOfBounds, id,
					entity.Transform.Translation.X, entity.Transform.Translation.Y))
			}
		}
	}

	return errors.Join(errs...)
}
