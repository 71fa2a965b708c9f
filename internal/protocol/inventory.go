package protocol

import (
	"fmt"

	"github.com/chlobes/rps-game-client/internal/types"
)

// InventoryKind tags which container an InventoryType addresses.
type InventoryKind int

const (
	InvTeam InventoryKind = iota
	InvUnitStorage
	InvEquipmentStorage
	InvUnit
)

// EquipSlot is one of the four equipment slots on a unit.
type EquipSlot int

// EquipSlotFromIndex validates a slot index coming from hit testing.
func EquipSlotFromIndex(i int) (EquipSlot, error) {
	if i < 0 || i >= types.EquipSlots {
		return 0, fmt.Errorf("protocol: equipment slot %d out of range", i)
	}
	return EquipSlot(i), nil
}

// InventoryType names where an item lives. It is the vocabulary shared by
// the drag resolver and the transfer/repair/juice packets.
type InventoryType struct {
	Kind       InventoryKind `json:"kind"`
	Index      int           `json:"index"` // team/storage index, or unit index for InvUnit
	InSafeZone bool          `json:"inSafeZone,omitempty"`
	InTeam     bool          `json:"inTeam,omitempty"`
	Slot       EquipSlot     `json:"slot,omitempty"`
}

func Team(i int) InventoryType        { return InventoryType{Kind: InvTeam, Index: i} }
func UnitStorage(i int) InventoryType { return InventoryType{Kind: InvUnitStorage, Index: i} }

func EquipmentStorage(inSafeZone bool, i int) InventoryType {
	return InventoryType{Kind: InvEquipmentStorage, InSafeZone: inSafeZone, Index: i}
}

func UnitSlot(inTeam bool, unit int, slot EquipSlot) InventoryType {
	return InventoryType{Kind: InvUnit, InTeam: inTeam, Index: unit, Slot: slot}
}

// SameContainer reports whether t and o address the same container,
// ignoring the position inside it.
func (t InventoryType) SameContainer(o InventoryType) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case InvEquipmentStorage:
		return t.InSafeZone == o.InSafeZone
	case InvUnit:
		return t.InTeam == o.InTeam && t.Index == o.Index
	default:
		return true
	}
}

func (t InventoryType) String() string {
	switch t.Kind {
	case InvTeam:
		return fmt.Sprintf("team(%d)", t.Index)
	case InvUnitStorage:
		return fmt.Sprintf("unit_storage(%d)", t.Index)
	case InvEquipmentStorage:
		return fmt.Sprintf("equipment_storage(%t, %d)", t.InSafeZone, t.Index)
	case InvUnit:
		return fmt.Sprintf("unit(in_team: %t, %d, slot %d)", t.InTeam, t.Index, t.Slot)
	default:
		return fmt.Sprintf("inventory(%d?)", int(t.Kind))
	}
}
