package game

import (
	"fmt"
	"time"

	"github.com/hako/durafmt"

	"github.com/chlobes/rps-game-client/internal/types"
)

// FramesPerSnapshot is how many updates each recorded snapshot stays on screen.
const FramesPerSnapshot = 1

var shortUnits = mustUnits("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")

func mustUnits(s string) durafmt.Units {
	u, err := durafmt.DefaultUnitsCoder.Decode(s)
	if err != nil {
		panic(fmt.Sprintf("replay: unit labels %q: %v", s, err))
	}
	return u
}

// Replay plays back a fight recording. While one is attached it replaces
// the normal scene and input.
type Replay struct {
	Recording types.FightRecording
	Index     int
	Paused    bool
	frames    int
}

func NewReplay(r types.FightRecording) *Replay {
	return &Replay{Recording: r}
}

// Tick advances playback and reports whether the recording has ended.
func (r *Replay) Tick() bool {
	if r.Paused {
		return false
	}
	r.frames++
	if r.frames%FramesPerSnapshot == 0 {
		r.Index++
	}
	return r.Index >= r.Recording.Len()
}

func (r *Replay) Current() types.Snapshot { return r.Recording.At(r.Index) }

func (r *Replay) TogglePause() { r.Paused = !r.Paused }
func (r *Replay) Rewind() { r.Index = 0 }

// Step moves by delta snapshots while paused, staying inside the recording.
func (r *Replay) Step(delta int) {
	if !r.Paused || r.Recording.Len() == 0 {
		return
	}
	r.Index = max(0, min(r.Index+delta, r.Recording.Len()-1))
}

func snapshotDuration(n int) time.Duration {
	return time.Duration(n*FramesPerSnapshot) * time.Second / 60
}

// Progress is the "elapsed / total" label of the replay.
func (r *Replay) Progress() string {
	cur := snapshotDuration(r.Index).Round(100 * time.Millisecond)
	total := snapshotDuration(r.Recording.Len()).Round(100 * time.Millisecond)
	return fmt.Sprintf("%s / %s",
		durafmt.Parse(cur).LimitFirstN(2).Format(shortUnits),
		durafmt.Parse(total).LimitFirstN(2).Format(shortUnits))
}
