package game

import (
	"tile-snake/game/types"
	"tile-snake/logging"
)

// InputSource delivers key presses. Subscribe returns a func that removes
// the listener.
type InputSource interface {
	Subscribe(fn func(types.Key)) (unsubscribe func())
}

// HandleKey maps a key press to a heading and queues it for the next Step.
// A heading on the same axis as the last applied one is ignored: that blocks
// reversals and also makes re-pressing the current direction a no-op.
func (e *Engine) HandleKey(k types.Key) bool {
	h, ok := e.cfg.Keys.Lookup(k)
	if !ok {
		return false
	}
	if h.Axis == e.lastHeading.Axis {
		e.log.Debug("heading rejected",
			logging.String("proposed", h.String()),
			logging.String("current", e.lastHeading.String()))
		return false
	}
	e.heading = h
	return true
}
