package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/batcoin/internal/domain/entity"
)

// KeyEvent is a single key transition observed during a tick
type KeyEvent struct {
	Key  ebiten.Key
	Down bool
}

// KeySource supplies the key transitions of the current tick
type KeySource interface {
	Poll() []KeyEvent
}

// KeyboardSource reads key transitions from ebiten.
// Releases are reported before presses within one tick.
type KeyboardSource struct {
	pressed  []ebiten.Key
	released []ebiten.Key
}

// NewKeyboardSource creates a keyboard-backed key source
func NewKeyboardSource() *KeyboardSource {
	return &KeyboardSource{}
}

// Poll returns the keys released and pressed since the last tick
func (k *KeyboardSource) Poll() []KeyEvent {
	k.released = inpututil.AppendJustReleasedKeys(k.released[:0])
	k.pressed = inpututil.AppendJustPressedKeys(k.pressed[:0])

	events := make([]KeyEvent, 0, len(k.released)+len(k.pressed))
	for _, key := range k.released {
		events = append(events, KeyEvent{Key: key, Down: false})
	}
	for _, key := range k.pressed {
		events = append(events, KeyEvent{Key: key, Down: true})
	}
	return events
}

var arrowDirections = map[ebiten.Key]entity.Direction{
	ebiten.KeyArrowLeft:  entity.DirLeft,
	ebiten.KeyArrowRight: entity.DirRight,
	ebiten.KeyArrowUp:    entity.DirUp,
	ebiten.KeyArrowDown:  entity.DirDown,
}

// InputSystem turns key events into the player's movement direction
type InputSystem struct {
	source    KeySource
	direction entity.Direction
}

// NewInputSystem creates a new input system reading from source
func NewInputSystem(source KeySource) *InputSystem {
	return &InputSystem{source: source}
}

// Update drains the key source and applies every event in order
func (s *InputSystem) Update() entity.Direction {
	if s.source == nil {
		return s.direction
	}
	return s.Apply(s.source.Poll())
}

// Apply folds key events into the current direction.
// The last arrow pressed wins. Releasing any arrow stops movement, even when
// another arrow is still held. Other keys are ignored.
func (s *InputSystem) Apply(events []KeyEvent) entity.Direction {
	for _, ev := range events {
		dir, ok := arrowDirections[ev.Key]
		if !ok {
			continue
		}
		if ev.Down {
			s.direction = dir
		} else {
			s.direction = entity.DirNone
		}
	}
	return s.direction
}

// Direction returns the current movement direction
func (s *InputSystem) Direction() entity.Direction {
	return s.direction
}

// UpdatePlayer moves the player one frame and keeps it on screen
func (s *InputSystem) UpdatePlayer(player *entity.Player, screenW, screenH int) {
	player.Direction = s.direction
	player.Move(entity.PlayerSpeed)
	player.ClampTo(screenW, screenH)
}
