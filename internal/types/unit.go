package types

type Class int

const (
	Melee Class = iota
	Ranged
)

func (c Class) String() string {
	switch c {
	case Melee:
		return "melee"
	case Ranged:
		return "ranged"
	default:
		return "??"
	}
}

type Element int

const (
	Red Element = iota
	Green
	Blue
)

func (e Element) String() string {
	switch e {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "??"
	}
}

// EquipSlots is the fixed number of equipment slots every unit carries.
const EquipSlots = 4

type Perk struct {
	Color    [3]float32 `json:"color"`
	Desc     string     `json:"desc"`
	Priority int        `json:"priority,omitempty"`
}

type Unit struct {
	HP      float64 `json:"hp"`
	MaxHP   float64 `json:"maxHp"`
	HPLim   float64 `json:"hpLim"` // healing cap
	Class   Class   `json:"class"`
	Element Element `json:"element"`
	Attack  float64 `json:"attack"`
	Armor   float64 `json:"armor"`
	Block   float64 `json:"block"`
	Regen   float64 `json:"regen"`

	Perks []Perk `json:"perks"`
	// PerkChoice is only set while the unit is levelling up.
	PerkChoice []Perk                  `json:"perkChoice,omitempty"`
	Equipment  [EquipSlots]*Equipment `json:"equipment"`
}

func (u *Unit) HasPerkChoice() bool { return len(u.PerkChoice) > 0 }

// Hurt reports whether the unit is below full health.
func (u *Unit) Hurt() bool { return u.HP+1e-8 < u.MaxHP }

// UnitView is what the client is allowed to know about an opponent unit.
type UnitView struct {
	Unit
	ClassRevealed   bool `json:"classRevealed"`
	ElementRevealed bool `json:"elementRevealed"`
	HPRevealed      bool `json:"hpRevealed"`
}

// Reveal wraps one of our own units in a fully revealed view.
func Reveal(u Unit) UnitView {
	return UnitView{Unit: u, ClassRevealed: true, ElementRevealed: true, HPRevealed: true}
}

// MoveOption is a destination offered by the safe zone. Its index in the
// offered list is what gets echoed back in a move request.
type MoveOption struct {
	Name         string `json:"name"`
	MaxGroupSize *int   `json:"maxGroupSize,omitempty"`
}

// Allows reports whether a team of n units may take this option.
func (m MoveOption) Allows(n int) bool {
	if n == 0 {
		return false
	}
	return m.MaxGroupSize == nil || n <= *m.MaxGroupSize
}
