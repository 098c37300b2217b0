// File: terminal/terminal.go
package terminal

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lguibr/bombgrid/game"
	"github.com/lguibr/bombgrid/render"
)

// DefaultHold is how long a key counts as held after its last press or
// auto-repeat. Terminals report no key releases.
const DefaultHold = 150 * time.Millisecond

type control uint8

const (
	controlLeft control = iota
	controlRight
	controlUp
	controlDown
	controlBomb
)

var styles = map[rune]tcell.Style{
	game.PlanWall:      tcell.StyleDefault.Foreground(tcell.ColorGray),
	game.PlanEmpty:     tcell.StyleDefault.Foreground(tcell.ColorDarkGray),
	game.PlanBrick:     tcell.StyleDefault.Foreground(tcell.ColorMaroon),
	game.PlanAddOn:     tcell.StyleDefault.Foreground(tcell.ColorGreen),
	game.PlanBomb:      tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
	game.PlanExplosion: tcell.StyleDefault.Foreground(tcell.ColorYellow),
	game.PlanPlayer:    tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true),
}

// Terminal draws frames on a tcell screen and turns key presses into input
// flags. It serves as both the display and the controls of a campaign.
type Terminal struct {
	screen tcell.Screen
	hold   time.Duration

	mu      sync.Mutex
	pressed map[control]time.Time
	bomb    bool

	quit     chan struct{}
	quitOnce sync.Once
	done     chan struct{}
}

// Open initialises the process terminal.
func Open(hold time.Duration) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create screen")
	}
	return New(screen, hold)
}

// New takes ownership of screen, initialises it and starts reading its events.
func New(screen tcell.Screen, hold time.Duration) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init screen")
	}
	screen.HideCursor()
	screen.Clear()

	t := &Terminal{
		screen:  screen,
		hold:    hold,
		pressed: make(map[control]time.Time),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go t.eventLoop()
	return t, nil
}

// Quit is closed once the player asked to leave.
func (t *Terminal) Quit() <-chan struct{} { return t.quit }

// Close restores the terminal and waits for the event reader to stop.
func (t *Terminal) Close() {
	t.screen.Fini()
	<-t.done
}

func (t *Terminal) eventLoop() {
	defer close(t.done)
	for {
		event := t.screen.PollEvent()
		if event == nil {
			return
		}
		switch event := event.(type) {
		case *tcell.EventKey:
			t.handleKey(event)
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

func (t *Terminal) handleKey(event *tcell.EventKey) {
	var pressed control
	switch event.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		t.quitOnce.Do(func() { close(t.quit) })
		return
	case tcell.KeyLeft:
		pressed = controlLeft
	case tcell.KeyRight:
		pressed = controlRight
	case tcell.KeyUp:
		pressed = controlUp
	case tcell.KeyDown:
		pressed = controlDown
	case tcell.KeyRune:
		switch event.Rune() {
		case 'a':
			pressed = controlLeft
		case 'd':
			pressed = controlRight
		case 'w':
			pressed = controlUp
		case 's':
			pressed = controlDown
		case 'e', ' ':
			pressed = controlBomb
		case 'q':
			t.quitOnce.Do(func() { close(t.quit) })
			return
		default:
			return
		}
	default:
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.pressed[pressed] = time.Now()
	if pressed == controlBomb {
		t.bomb = true
	}
}

// Sample reports the keys held within the hold window. A bomb press is kept
// until the next sample even when the window already passed.
func (t *Terminal) Sample() game.Input {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := time.Now()
	held := func(c control) bool {
		at, ok := t.pressed[c]
		return ok && now.Sub(at) < t.hold
	}
	input := game.Input{
		Left:      held(controlLeft),
		Right:     held(controlRight),
		Up:        held(controlUp),
		Down:      held(controlDown),
		PlaceBomb: t.bomb || held(controlBomb),
	}
	t.bomb = false
	return input
}

// Sync draws the frame with a status line below the grid.
func (t *Terminal) Sync(frame render.Frame) error {
	t.screen.Clear()
	for y, row := range render.Cells(frame) {
		for x, r := range row {
			t.screen.SetContent(x, y, r, nil, styles[r])
		}
	}
	status := fmt.Sprintf("%s  tick %d  [wasd/arrows move, e/space bomb, q quit]", frame.Status, frame.Tick)
	t.drawText(0, frame.Height+1, status, tcell.StyleDefault)
	t.screen.Show()
	return nil
}

func (t *Terminal) Clear() error {
	t.screen.Clear()
	t.screen.Show()
	return nil
}

func (t *Terminal) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}
