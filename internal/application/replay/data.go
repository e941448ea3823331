package replay

import "github.com/hajimehoshi/ebiten/v2"

// FrameInput records the key transitions of a single frame
type FrameInput struct {
	F        int          // Frame number
	Released []ebiten.Key // Keys released this frame, applied first
	Pressed  []ebiten.Key // Keys pressed this frame
}

// ReplayData is an input script for a game session.
// Frames must be sorted by frame number; missing frames have no input.
type ReplayData struct {
	Version string
	Frames  []FrameInput
}

// Hold builds the frames that press key at frame from and release it at frame to
func Hold(key ebiten.Key, from, to int) []FrameInput {
	return []FrameInput{
		{F: from, Pressed: []ebiten.Key{key}},
		{F: to, Released: []ebiten.Key{key}},
	}
}
