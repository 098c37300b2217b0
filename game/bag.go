// File: game/bag.go
package game

import (
	"github.com/lguibr/bombgrid/utils"
)

// Bag is the player's bomb inventory.
type Bag struct {
	Stock       int          `json:"stock"`
	MaxStock    int          `json:"maxStock"`
	BlastRange  utils.Vector `json:"blastRange"`
	Speed       float64      `json:"speed"`
	ReloadTimer float64      `json:"reloadTimer"`
}

func NewBag(cfg utils.Config) Bag {
	return Bag{
		Stock:      cfg.StartBombs,
		MaxStock:   cfg.StartMaxBombs,
		BlastRange: cfg.StartBlastRange,
		Speed:      cfg.PlayerSpeed,
	}
}

// reload runs the cooldown for one player update. Once the timer has gone
// negative a bomb is restocked and the timer restarts.
func (b Bag) reload(dt, cooldown float64) Bag {
	if b.ReloadTimer < 0 {
		b.ReloadTimer = cooldown
		b.Stock = min(b.Stock+1, b.MaxStock)
	} else {
		b.ReloadTimer -= dt
	}
	return b.checked()
}

// CanPlace reports whether a bomb may be taken from the bag: either stock
// is left or the reload timer has run out.
func (b Bag) CanPlace() bool {
	return b.ReloadTimer <= 0 || b.Stock > 0
}

// take consumes one bomb and restarts the cooldown. Taking from an empty bag
// whose timer ran out consumes the reload that was due, so stock stays at 0.
func (b Bag) take(cooldown float64) Bag {
	b.Stock = max(b.Stock-1, 0)
	b.ReloadTimer = cooldown
	return b.checked()
}

// apply returns the bag after picking up power.
func (b Bag) apply(power Power) Bag {
	switch power {
	case PowerMoreBombs:
		b.Stock++
		b.MaxStock++
	case PowerBlastRange:
		b.BlastRange = b.BlastRange.Plus(utils.Vec(1, 1))
	case PowerMoreSpeed:
		b.Speed++
	case PowerPushBombs:
		// Recognised but has no effect.
	}
	return b.checked()
}

func (b Bag) checked() Bag {
	if b.Stock < 0 || b.Stock > b.MaxStock {
		invariant(false, "bag stock %d outside [0, %d]", b.Stock, b.MaxStock)
		b.Stock = utils.Clamp(b.Stock, 0, max(b.MaxStock, 0))
	}
	return b
}
