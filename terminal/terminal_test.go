package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lguibr/bombgrid/game"
	"github.com/lguibr/bombgrid/render"
	"github.com/lguibr/bombgrid/utils"
)

func newTestTerminal(t *testing.T, hold time.Duration) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term, err := New(screen, hold)
	require.NoError(t, err)
	screen.SetSize(40, 10)
	t.Cleanup(term.Close)
	return term, screen
}

func TestTerminal_KeysBecomeInput(t *testing.T) {
	testCases := []struct {
		name     string
		key      tcell.Key
		r        rune
		expected game.Input
	}{
		{"a", tcell.KeyRune, 'a', game.Input{Left: true}},
		{"d", tcell.KeyRune, 'd', game.Input{Right: true}},
		{"w", tcell.KeyRune, 'w', game.Input{Up: true}},
		{"s", tcell.KeyRune, 's', game.Input{Down: true}},
		{"e", tcell.KeyRune, 'e', game.Input{PlaceBomb: true}},
		{"space", tcell.KeyRune, ' ', game.Input{PlaceBomb: true}},
		{"arrow left", tcell.KeyLeft, 0, game.Input{Left: true}},
		{"arrow right", tcell.KeyRight, 0, game.Input{Right: true}},
		{"arrow up", tcell.KeyUp, 0, game.Input{Up: true}},
		{"arrow down", tcell.KeyDown, 0, game.Input{Down: true}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			term, screen := newTestTerminal(t, time.Hour)
			screen.InjectKey(tc.key, tc.r, tcell.ModNone)
			assert.Eventually(t, func() bool {
				return term.Sample() == tc.expected
			}, time.Second, 5*time.Millisecond)
		})
	}
}

func TestTerminal_HoldWindowExpires(t *testing.T) {
	term, screen := newTestTerminal(t, 20*time.Millisecond)
	screen.InjectKey(tcell.KeyRune, 'd', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'e', tcell.ModNone)

	require.Eventually(t, func() bool {
		term.mu.Lock()
		defer term.mu.Unlock()
		return term.bomb && len(term.pressed) == 2
	}, time.Second, 5*time.Millisecond)
	time.Sleep(40 * time.Millisecond)

	assert.Equal(t, game.Input{PlaceBomb: true}, term.Sample(), "a bomb press survives until sampled")
	assert.Equal(t, game.Input{}, term.Sample())
}

func TestTerminal_Quit(t *testing.T) {
	for _, key := range []struct {
		key tcell.Key
		r   rune
	}{{tcell.KeyRune, 'q'}, {tcell.KeyEscape, 0}, {tcell.KeyCtrlC, 0}} {
		term, screen := newTestTerminal(t, DefaultHold)
		screen.InjectKey(key.key, key.r, tcell.ModNone)
		select {
		case <-term.Quit():
		case <-time.After(time.Second):
			t.Fatalf("key %v %q did not quit", key.key, key.r)
		}
	}
}

func TestTerminal_SyncDrawsTheFrame(t *testing.T) {
	term, screen := newTestTerminal(t, DefaultHold)
	plan := "=====\n=@#0=\n=====\n"
	state, err := game.StartLevel(plan, utils.DefaultConfig())
	require.NoError(t, err)

	require.NoError(t, term.Sync(render.FrameOf(state)))

	cells, width, _ := screen.GetContents()
	row := func(y, length int) string {
		var runes []rune
		for x := 0; x < length; x++ {
			runes = append(runes, cells[y*width+x].Runes[0])
		}
		return string(runes)
	}
	assert.Equal(t, "=====", row(0, 5))
	assert.Equal(t, "=@#0=", row(1, 5))
	assert.Equal(t, "playing", row(4, 7))

	_, _, style, _ := screen.GetContent(1, 1)
	assert.Equal(t, styles[game.PlanPlayer], style)

	require.NoError(t, term.Clear())
	cells, _, _ = screen.GetContents()
	assert.Equal(t, ' ', cells[width+1].Runes[0])
}
