package types

// Snapshot is one recorded moment of a fight.
type Snapshot struct {
	Team     []Unit     `json:"team"`
	Opponent []UnitView `json:"opponent"`
}

type FightRecording struct {
	Snapshots []Snapshot `json:"snapshots"`
	Won       bool       `json:"won"`
}

func (r *FightRecording) Len() int { return len(r.Snapshots) }

// At returns snapshot i, or an empty snapshot when i is out of range.
func (r *FightRecording) At(i int) Snapshot {
	if i < 0 || i >= len(r.Snapshots) {
		return Snapshot{}
	}
	return r.Snapshots[i]
}
