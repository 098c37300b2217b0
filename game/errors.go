// File: game/errors.go
package game

import (
	"log"

	"github.com/pkg/errors"
)

var (
	// ErrLevelFormat wraps every rejection of a level plan.
	ErrLevelFormat = errors.New("level format error")
	// ErrNoPlayer is returned when a playing state does not hold exactly one player.
	ErrNoPlayer = errors.New("no player in playing state")
	// ErrInvariant is the panic value raised by debug builds on a broken invariant.
	ErrInvariant = errors.New("invariant violation")
)

// invariant panics in debug builds and logs in release builds, where the
// caller self-heals after the call.
func invariant(ok bool, format string, args ...interface{}) {
	if ok {
		return
	}
	err := errors.Wrapf(ErrInvariant, format, args...)
	if debugInvariants {
		panic(err)
	}
	log.Printf("WARN: %v (self-healed)", err)
}
