package rooms

import (
	"deadlytruth/internal/game"
	"time"
)

// Room bundles everything owned per room id: the serialized game state and
// the wake-up signal consumed by the room's turn scheduler. Connections are
// tracked separately by the wshub registry.
type Room struct {
	ID        string
	State     *game.State
	Signal    *game.ActionSignal
	CreatedAt time.Time
}
