// Package scene defines the Scene interface for game screens.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents a game screen driven by game.Game.
//
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by one tick of dt seconds.
	// dt is the fixed tick length from the configured TPS; scenes that move in
	// whole pixels per frame, like playing.Playing, ignore it.
	// Returns the next scene if a transition is needed, nil to stay.
	// Returning ebiten.Termination ends the run loop cleanly; any other error aborts it.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when the scene becomes current.
	OnEnter()

	// OnExit is called when the scene is replaced or the game terminates.
	OnExit()
}
