package host

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spacehole-rogue/particle_globe/internal/game"
)

// keyBindings maps keys to driver actions. Several keys may share an action.
var keyBindings = []struct {
	key    ebiten.Key
	action game.Action
}{
	{ebiten.KeyDigit0, game.ActionResetOffset},
	{ebiten.KeyR, game.ActionResetOffset},
	{ebiten.KeyMinus, game.ActionDecreaseOffset},
	{ebiten.KeyDown, game.ActionDecreaseOffset},
	{ebiten.KeyEqual, game.ActionIncreaseOffset},
	{ebiten.KeyUp, game.ActionIncreaseOffset},
	{ebiten.KeyS, game.ActionToggleStats},
	{ebiten.KeySpace, game.ActionTogglePause},
	{ebiten.KeyP, game.ActionTogglePause},
}

// ActionForKey returns the action bound to k, or ActionNone.
func ActionForKey(k ebiten.Key) game.Action {
	for _, b := range keyBindings {
		if b.key == k {
			return b.action
		}
	}
	return game.ActionNone
}

// justPressed returns the actions whose keys went down this tick, in
// binding order.
func justPressed() []game.Action {
	var out []game.Action
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			out = append(out, b.action)
		}
	}
	return out
}
