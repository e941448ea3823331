package replay

import (
	"sort"

	"github.com/younwookim/batcoin/internal/application/system"
)

// Replayer plays back recorded key transitions one frame per Poll.
// It implements system.KeySource.
type Replayer struct {
	data  ReplayData
	frame int
	next  int // index of the next FrameInput to emit
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	sort.SliceStable(data.Frames, func(i, j int) bool {
		return data.Frames[i].F < data.Frames[j].F
	})
	return &Replayer{data: data}
}

// Poll returns the key events of the current frame and advances
func (r *Replayer) Poll() []system.KeyEvent {
	var events []system.KeyEvent
	for r.next < len(r.data.Frames) && r.data.Frames[r.next].F <= r.frame {
		fi := r.data.Frames[r.next]
		if fi.F == r.frame {
			for _, k := range fi.Released {
				events = append(events, system.KeyEvent{Key: k, Down: false})
			}
			for _, k := range fi.Pressed {
				events = append(events, system.KeyEvent{Key: k, Down: true})
			}
		}
		r.next++
	}
	r.frame++
	return events
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the number of frames covered by the script
func (r *Replayer) TotalFrames() int {
	if len(r.data.Frames) == 0 {
		return 0
	}
	return r.data.Frames[len(r.data.Frames)-1].F + 1
}

// Done reports whether every scripted frame has been emitted
func (r *Replayer) Done() bool {
	return r.next >= len(r.data.Frames)
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
	r.next = 0
}
