package game

import (
	"log"

	"github.com/chlobes/rps-game-client/internal/netcfg"
	"github.com/chlobes/rps-game-client/internal/protocol"
	"github.com/chlobes/rps-game-client/internal/types"
	"github.com/chlobes/rps-game-client/internal/widget"
)

// HandlePacket applies one fully decoded server packet.
func (g *Game) HandlePacket(p protocol.ServerPacket) {
	if netcfg.Debug {
		log.Printf("NET: <- %s", protocol.TypeOf(p))
	}
	if !g.loggedIn {
		if m, ok := p.(protocol.Message); ok {
			g.loginResult = m.Text
			return
		}
		g.loggedIn = true
		g.loginResult = ""
		log.Println("AUTH: logged in")
	}

	switch p := p.(type) {
	case protocol.Message:
		g.messages.Push(p.Text)

	case protocol.SafeZoneInfo:
		for i := range p.UnitStorage {
			p.UnitStorage[i].WrapDescriptions()
		}
		wrapEquipment(p.EquipmentStorage)
		g.moveOptions = p.MoveOptions
		g.juice = p.Juice
		g.state = SafeZone{UnitStorage: p.UnitStorage, EquipmentStorage: p.EquipmentStorage}

	case protocol.TeamUpdate:
		for i := range p.Units {
			p.Units[i].WrapDescriptions()
		}
		wrapEquipment(p.Equipment)
		g.team = p.Units
		// the server counts depth from zero
		g.depth = p.Depth + 1
		g.gold = p.Gold
		g.equipment = p.Equipment

	case protocol.Opponent:
		for i := range p.Units {
			p.Units[i].WrapDescriptions()
		}
		g.opponent = p.Units
		g.opponentName = p.Name
		g.state = InFight{}

	case protocol.FightResult:
		g.opponentName = p.Name
		if p.Recording.Won {
			g.messages.Push("won fight")
		} else {
			g.messages.Push("lost fight")
		}
		p.Recording.WrapDescriptions()
		g.state = Looting{}
		g.replay = NewReplay(p.Recording)

	case protocol.Loot:
		g.state = Looting{}

	default:
		log.Printf("NET: unhandled packet %T", p)
	}
	g.refreshSelection()
}

func wrapEquipment(es []types.Equipment) {
	for i := range es {
		es[i].WrapDescription()
	}
}

// refreshSelection rebuilds an addressed detail panel from the new data, or
// closes it when the unit it showed is gone.
func (g *Game) refreshSelection() {
	if g.selected == nil || g.selected.Addr == nil {
		return
	}
	if u := g.unitAt(*g.selected.Addr); u != nil {
		g.selected.Detail = widget.NewLoadout(u)
	} else {
		g.selected = nil
	}
}

// unitAt returns the unit a Team or UnitStorage address points at.
func (g *Game) unitAt(a protocol.InventoryType) *types.Unit {
	switch a.Kind {
	case protocol.InvTeam:
		if a.Index >= 0 && a.Index < len(g.team) {
			return &g.team[a.Index]
		}
	case protocol.InvUnitStorage:
		if sz, ok := g.safeZone(); ok && a.Index >= 0 && a.Index < len(sz.UnitStorage) {
			return &sz.UnitStorage[a.Index]
		}
	}
	return nil
}
