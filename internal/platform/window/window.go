// Package window hosts the basket game in a desktop window.
//
// The real host needs a graphics stack and is built with -tags ebiten.
// Without the tag Run reports ErrUnavailable.
package window

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/basket-catch/internal/config"
	"github.com/vovakirdan/basket-catch/internal/core"
)

// ErrUnavailable is returned by Run in builds without the window host.
var ErrUnavailable = errors.New("window: built without ebiten support (rebuild with -tags ebiten)")

// Options configures a window session.
type Options struct {
	Runtime core.RuntimeConfig
	Basket  config.BasketConfig
	Scale   int // window pixels per canvas unit
	Title   string
	Logger  *log.Logger
}

// Key repeat timing, in ticks at the default 60 TPS.
const (
	repeatDelay    = 15
	repeatInterval = 4
)

// repeating reports whether a key held for d ticks fires this tick.
// A press fires at once, then again after the delay at a fixed interval.
func repeating(d int) bool {
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}
