package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/chlobes/rps-game-client/internal/geom"
	"github.com/chlobes/rps-game-client/internal/protocol"
	"github.com/chlobes/rps-game-client/internal/render"
	"github.com/chlobes/rps-game-client/internal/types"
	"github.com/chlobes/rps-game-client/internal/widget"
)

type recorder struct {
	sent []protocol.ClientPacket
	err  error
}

func (r *recorder) Send(p protocol.ClientPacket) error {
	r.sent = append(r.sent, p)
	return r.err
}

var wide = geom.View{Aspect: 16.0 / 9.0}

func units(n int) []types.Unit {
	us := make([]types.Unit, n)
	for i := range us {
		us[i] = types.Unit{HP: 10, MaxHP: 10, HPLim: 10}
	}
	return us
}

// newTestGame returns a logged in game with n team members.
func newTestGame(t *testing.T, n int) (*Game, *recorder) {
	t.Helper()
	r := &recorder{}
	g := New(r)
	g.SetView(wide)
	g.HandlePacket(protocol.TeamUpdate{Units: units(n)})
	if !g.LoggedIn() {
		t.Fatal("team update should complete the login")
	}
	return g, r
}

func enterSafeZone(g *Game, storage int, equipment int, options ...types.MoveOption) {
	g.HandlePacket(protocol.SafeZoneInfo{
		MoveOptions:      options,
		UnitStorage:      units(storage),
		EquipmentStorage: make([]types.Equipment, equipment),
	})
}

func click(g *Game, p geom.Vec2) {
	g.PointerDown(p)
	g.PointerUp(p)
}

func drag(g *Game, from, to geom.Vec2) {
	g.PointerDown(from)
	g.PointerMove(to)
	g.PointerUp(to)
}

func inside(b widget.Button, v geom.View) geom.Vec2 {
	return b.At(v).Add(b.Size.Scale(0.5))
}

func carriedItem(v geom.View, i int) geom.Vec2 {
	return equipBoxPos(v).Add(equipPos(i)).AddScalar(0.03)
}

func wantSent(t *testing.T, r *recorder, want ...protocol.ClientPacket) {
	t.Helper()
	if len(r.sent) != len(want) {
		t.Fatalf("want %d packets %v, got %d %v", len(want), want, len(r.sent), r.sent)
	}
	for i := range want {
		if r.sent[i] != want[i] {
			t.Fatalf("packet %d: want %#v, got %#v", i, want[i], r.sent[i])
		}
	}
}

func TestClickSelectsTeamUnit(t *testing.T) {
	g, r := newTestGame(t, 3)
	click(g, teamUnitPos(3, 1).Add(geom.V(0.05, 0.05)))

	s := g.Selected()
	if s == nil || s.Addr == nil || *s.Addr != protocol.Team(1) {
		t.Fatalf("want selection addressed to team(1), got %+v", s)
	}
	if _, ok := s.Detail.(widget.Loadout); !ok {
		t.Fatalf("want a loadout detail, got %T", s.Detail)
	}
	wantSent(t, r)

	click(g, geom.V(0, 0.9))
	if g.Selected() != nil {
		t.Fatal("clicking empty space should clear the selection")
	}
}

func TestDragStoredUnitIntoTeamGap(t *testing.T) {
	g, r := newTestGame(t, 4)
	enterSafeZone(g, 3, 0)
	drag(g, storageUnitPos(wide, 2).AddScalar(0.01), geom.V(0.01, -0.5))
	wantSent(t, r, protocol.Transfer{From: protocol.UnitStorage(2), To: protocol.Team(2)})
}

func TestDragReordersTeam(t *testing.T) {
	g, r := newTestGame(t, 4)
	drag(g, teamUnitPos(4, 0).AddScalar(0.05), geom.V(-0.315, -0.5))
	wantSent(t, r, protocol.Transfer{From: protocol.Team(0), To: protocol.Team(1)})
}

func TestRepairWithoutTargetSendsNothing(t *testing.T) {
	g, r := newTestGame(t, 2)
	enterSafeZone(g, 0, 0)
	at := g.ctl.repair.At(wide)
	drag(g, at.AddScalar(0.01), at.AddScalar(0.09))
	click(g, at.AddScalar(0.05))
	wantSent(t, r)
	if !g.RepairTyping() {
		t.Fatal("clicking the repair button should start editing the target")
	}
}

func TestRepairAndJuiceCarriedEquipment(t *testing.T) {
	g, r := newTestGame(t, 1)
	g.HandlePacket(protocol.TeamUpdate{Units: units(1), Equipment: make([]types.Equipment, 2)})
	enterSafeZone(g, 0, 0)

	drag(g, inside(g.ctl.repair, wide), carriedItem(wide, 1))
	drag(g, carriedItem(wide, 0), inside(g.ctl.juice, wide))
	wantSent(t, r,
		protocol.Repair{Target: protocol.DefaultRepairTarget, At: protocol.EquipmentStorage(false, 1)},
		protocol.Juice{From: protocol.EquipmentStorage(false, 0)},
	)
}

func TestDragIntoEquipmentPanels(t *testing.T) {
	g, r := newTestGame(t, 1)
	g.HandlePacket(protocol.TeamUpdate{Units: units(1), Equipment: make([]types.Equipment, 1)})
	enterSafeZone(g, 0, 2)

	empty := equipBoxPos(wide).Add(geom.V(0.5, 0.1))
	drag(g, safeEquipBoxPos(wide).Add(equipPos(1)).AddScalar(0.03), empty)
	drag(g, carriedItem(wide, 0), empty)
	wantSent(t, r,
		protocol.Transfer{From: protocol.EquipmentStorage(true, 1), To: protocol.EquipmentStorage(false, 1)},
		protocol.Transfer{From: protocol.EquipmentStorage(false, 0), To: protocol.EquipmentStorage(false, 0)},
	)
}

func TestDragOntoDetailSlot(t *testing.T) {
	g, r := newTestGame(t, 2)
	g.HandlePacket(protocol.TeamUpdate{Units: units(2), Equipment: make([]types.Equipment, 1)})
	click(g, teamUnitPos(2, 1).AddScalar(0.05))

	slot := detailPos(wide).AddScalar(0.01).Add(geom.V(2*widget.EquipSize*widget.Gap, widget.PerkSize*widget.Gap))
	drag(g, carriedItem(wide, 0), slot.AddScalar(0.05))
	wantSent(t, r, protocol.Transfer{From: protocol.EquipmentStorage(false, 0), To: protocol.UnitSlot(true, 1, 2)})
}

func TestDragWithoutSourceSendsNothing(t *testing.T) {
	g, r := newTestGame(t, 3)
	drag(g, geom.V(0, 0.9), teamUnitPos(3, 0).AddScalar(0.05))
	wantSent(t, r)
}

func TestClickEpsilon(t *testing.T) {
	g, _ := newTestGame(t, 3)
	p := teamUnitPos(3, 0).AddScalar(0.1)
	g.PointerDown(p)
	g.PointerUp(p.Add(geom.V(0.019, 0)))
	if g.Selected() == nil {
		t.Fatal("a release within the click distance should select")
	}

	g.selected = nil
	g.PointerDown(p)
	g.PointerUp(p.Add(geom.V(0.021, 0)))
	if g.Selected() != nil {
		t.Fatal("a release past the click distance is a drag, not a click")
	}
}

func TestMoveOptionOptimisticReset(t *testing.T) {
	g, r := newTestGame(t, 4)
	g.HandlePacket(protocol.TeamUpdate{Units: units(4), Depth: 6, Gold: 120})
	three := 3
	enterSafeZone(g, 0, 0, types.MoveOption{Name: "cave", MaxGroupSize: &three}, types.MoveOption{Name: "swamp"})

	at := func(i int) geom.Vec2 { return widget.MoveOptionPos(2, i).AddScalar(0.02) }
	click(g, at(0))
	wantSent(t, r)

	click(g, at(1))
	wantSent(t, r, protocol.Move{Option: 1})
	if g.Gold() != 0 || g.Depth() != 1 || len(g.MoveOptions()) != 0 {
		t.Fatalf("want gold 0, depth 1, no options, got %v %v %v", g.Gold(), g.Depth(), g.MoveOptions())
	}
	if _, ok := g.State().(InQueue); !ok {
		t.Fatalf("want InQueue, got %T", g.State())
	}
}

func TestLootingUpSaturatesAtZero(t *testing.T) {
	g, r := newTestGame(t, 1)
	for i := 0; i < 2; i++ {
		g.HandlePacket(protocol.Loot{})
		click(g, inside(g.ctl.up, wide))
	}
	if g.Depth() != 0 {
		t.Fatalf("want depth 0, got %d", g.Depth())
	}
	g.HandlePacket(protocol.Loot{})
	click(g, inside(g.ctl.down, wide))
	if g.Depth() != 1 {
		t.Fatalf("want depth 1, got %d", g.Depth())
	}
	wantSent(t, r, protocol.Move{Option: 0}, protocol.Move{Option: 0}, protocol.Move{Option: 2})
}

func TestDeclineFight(t *testing.T) {
	g, r := newTestGame(t, 1)
	g.HandlePacket(protocol.Opponent{Units: []types.UnitView{{}}, Name: "bob"})
	click(g, inside(g.ctl.doNot, wide))
	click(g, inside(g.ctl.fight, wide))
	wantSent(t, r, protocol.Fight{Accept: false})
	if s, ok := g.State().(InFight); !ok || !s.Chosen {
		t.Fatalf("want a chosen fight, got %#v", g.State())
	}
}

func TestFightResultStartsReplay(t *testing.T) {
	g, _ := newTestGame(t, 1)
	g.HandlePacket(protocol.Opponent{Units: []types.UnitView{{}}})
	rec := types.FightRecording{Snapshots: make([]types.Snapshot, 3), Won: true}
	g.HandlePacket(protocol.FightResult{Recording: rec})

	if _, ok := g.State().(Looting); !ok {
		t.Fatalf("want Looting, got %T", g.State())
	}
	rp := g.Replay()
	if rp == nil || rp.Index != 0 || rp.Paused {
		t.Fatalf("want a running replay at 0, got %+v", rp)
	}
	if m := g.Messages(); len(m) != 1 || m[0].Text != "won fight" {
		t.Fatalf("want a won fight message, got %v", m)
	}
	for i := 0; i < 3; i++ {
		g.Tick()
	}
	if g.Replay() != nil {
		t.Fatal("replay should end after its last snapshot")
	}
}

func TestReplayControls(t *testing.T) {
	g, r := newTestGame(t, 2)
	g.HandlePacket(protocol.FightResult{Recording: types.FightRecording{Snapshots: make([]types.Snapshot, 10)}})

	click(g, inside(g.ctl.pause, wide))
	g.Tick()
	if g.Replay().Index != 0 {
		t.Fatal("paused replay advanced")
	}
	g.StepReplay(3)
	g.StepReplay(-1)
	if g.Replay().Index != 2 {
		t.Fatalf("want index 2 after stepping, got %d", g.Replay().Index)
	}
	click(g, inside(g.ctl.rewind, wide))
	if g.Replay().Index != 0 {
		t.Fatal("rewind should return to the start")
	}
	drag(g, teamUnitPos(2, 0).AddScalar(0.05), teamUnitPos(2, 1).AddScalar(0.05))
	click(g, inside(g.ctl.skip, wide))
	if g.Replay() != nil {
		t.Fatal("skip should discard the replay")
	}
	wantSent(t, r)
}

func TestReplaySelectionIsReadOnly(t *testing.T) {
	g, _ := newTestGame(t, 1)
	snap := types.Snapshot{Team: units(2)}
	g.HandlePacket(protocol.FightResult{Recording: types.FightRecording{Snapshots: []types.Snapshot{snap, snap}}})
	click(g, teamUnitPos(2, 1).AddScalar(0.05))
	if s := g.Selected(); s == nil || s.Addr != nil {
		t.Fatalf("want an unaddressed selection, got %+v", s)
	}
}

func TestMessagesExpireInOrder(t *testing.T) {
	var m Messages
	m.Push("a")
	for i := 0; i < 10*60; i++ {
		m.Tick()
	}
	m.Push("b")
	for i := 0; i < 19*60; i++ {
		m.Tick()
	}
	if m.Len() != 2 || m.items[0].Text != "a" {
		t.Fatalf("want a then b, got %v", m.items)
	}
	for i := 0; i < 2*60; i++ {
		m.Tick()
	}
	if m.Len() != 1 || m.items[0].Text != "b" {
		t.Fatalf("want only b, got %v", m.items)
	}
}

func TestLoginGating(t *testing.T) {
	r := &recorder{}
	g := New(r)
	g.HandlePacket(protocol.Message{Text: "wrong password"})
	if g.LoggedIn() || g.LoginResult() != "wrong password" || len(g.Messages()) != 0 {
		t.Fatalf("message before login should only set the result, got %v %q %v",
			g.LoggedIn(), g.LoginResult(), g.Messages())
	}
	click(g, teamUnitPos(1, 0).AddScalar(0.05))
	g.HandlePacket(protocol.Loot{})
	if !g.LoggedIn() {
		t.Fatal("first non-message packet should log in")
	}
	if _, ok := g.State().(Looting); !ok {
		t.Fatalf("login packet should still be applied, got %T", g.State())
	}
	wantSent(t, r)
}

func TestLoginValidatesName(t *testing.T) {
	r := &recorder{}
	g := New(r)
	err := g.Login(false, strings.Repeat("x", protocol.MaxNameBytes+1), "pw")
	if !errors.Is(err, protocol.ErrNameTooLong) || g.LoginResult() != "name too long" {
		t.Fatalf("want name too long, got %v %q", err, g.LoginResult())
	}
	wantSent(t, r)

	if err := g.Login(true, "alice", "pw"); err != nil {
		t.Fatal(err)
	}
	wantSent(t, r, protocol.Auth{Create: true, Name: "alice", Hash: protocol.HashPassword("pw")})
}

func TestFailedSendLeavesStateAlone(t *testing.T) {
	g, r := newTestGame(t, 1)
	r.err = ErrClosed
	enterSafeZone(g, 0, 0)
	click(g, inside(g.ctl.purchase, wide))
	if _, ok := g.State().(SafeZone); !ok {
		t.Fatalf("want SafeZone, got %T", g.State())
	}
}

func TestRepairTargetTyping(t *testing.T) {
	g, _ := newTestGame(t, 1)
	enterSafeZone(g, 0, 0)
	click(g, inside(g.ctl.repair, wide))
	g.TypeText("1")
	g.Paste("2.5")
	if g.RepairTarget() != 12.5 {
		t.Fatalf("want 12.5, got %v", g.RepairTarget())
	}
	g.Backspace()
	g.Backspace()
	if g.RepairTarget() != 12 {
		t.Fatalf("want 12, got %v", g.RepairTarget())
	}
	g.TypeText("x")
	if g.RepairTarget() != 12 {
		t.Fatal("unparsable text should keep the last target")
	}
	click(g, geom.V(0, 0.9))
	if g.RepairTyping() {
		t.Fatal("any release should stop editing")
	}
}

func TestSelectionFollowsUpdates(t *testing.T) {
	g, _ := newTestGame(t, 2)
	click(g, teamUnitPos(2, 1).AddScalar(0.05))

	us := units(2)
	us[1].Perks = []types.Perk{{Desc: "new"}}
	g.HandlePacket(protocol.TeamUpdate{Units: us})
	if l := g.Selected().Detail.(widget.Loadout); len(l.Perks) != 1 {
		t.Fatalf("detail should be rebuilt from the update, got %+v", l)
	}
	g.HandlePacket(protocol.TeamUpdate{Units: units(1)})
	if g.Selected() != nil {
		t.Fatal("selection of a removed unit should close")
	}
}

func TestFrameBuildsEveryState(t *testing.T) {
	g, _ := newTestGame(t, 2)
	states := []func(){
		func() { enterSafeZone(g, 3, 2, types.MoveOption{Name: "cave"}) },
		func() { g.HandlePacket(protocol.Loot{}) },
		func() { g.state = InQueue{} },
		func() { g.HandlePacket(protocol.Opponent{Units: []types.UnitView{{}}, Name: "bob"}) },
		func() {
			g.HandlePacket(protocol.FightResult{Recording: types.FightRecording{Snapshots: []types.Snapshot{{Team: units(1)}}}})
		},
	}
	for i, enter := range states {
		enter()
		b := g.Frame()
		if b.Quads() == 0 {
			t.Fatalf("state %d drew nothing", i)
		}
	}
}

func hasQuadAt(l render.List, p geom.Vec2) bool {
	for i := 0; i < len(l); i += render.VertsPerQuad {
		if geom.Dist(geom.V(float64(l[i].X), float64(l[i].Y)), p) < 1e-5 {
			return true
		}
	}
	return false
}

func TestRepairButtonFollowsDrag(t *testing.T) {
	g, _ := newTestGame(t, 1)
	enterSafeZone(g, 0, 0)
	at := g.ctl.repair.At(wide)
	delta := geom.V(-0.5, 0.3)

	g.PointerDown(at.AddScalar(0.05))
	g.PointerMove(at.AddScalar(0.05).Add(delta))
	b := g.Frame()
	if !hasQuadAt(b.Opaque, at.Add(delta)) || hasQuadAt(b.Opaque, at) {
		t.Fatal("repair button should be drawn at the pointer offset while dragged")
	}
}

func TestDepthLabel(t *testing.T) {
	g, _ := newTestGame(t, 1)
	var l render.List
	g.depth = 0
	g.drawDepth(&l)
	if len(l) != 0 {
		t.Fatal("depth 0 should not be labelled")
	}
	g.depth = 3
	g.drawDepth(&l)
	if len(l) == 0 || float64(l[0].Y) != wide.Bottom() {
		t.Fatalf("depth label should sit on the bottom edge, got %v", l)
	}
}

func TestHeaderLabelPositions(t *testing.T) {
	if p := goldPos(wide); p.X >= 0 || p.Y+textSize.Y > wide.Top() {
		t.Fatalf("gold label should sit in the top-left corner, got %v", p)
	}
	s := "knife juice: 12"
	p := juicePos(wide, s)
	end := p.X + float64(len(s))*textSize.X
	if d := wide.Right() - end; d < textSize.X*widget.Gap-1e-9 || d > textSize.X*widget.Gap+1e-9 {
		t.Fatalf("juice label should end %v from the right edge, got %v", textSize.X*widget.Gap, d)
	}
	if p.Y >= safeEquipBoxPos(wide).Y {
		t.Fatal("juice label should sit under the safe zone equipment grid")
	}
}

func TestReplayProgressUsesShortUnits(t *testing.T) {
	r := NewReplay(types.FightRecording{Snapshots: make([]types.Snapshot, 120)})
	r.Index = 60
	p := r.Progress()
	if !strings.Contains(p, " / ") || strings.Contains(p, "second") {
		t.Fatalf("want a short elapsed / total label, got %q", p)
	}
}
