// Package game holds the client controller: the state machine driven by
// server packets, pointer and keyboard handling, the drag resolver, fight
// replays and per-frame scene building. It owns every piece of client
// state and is only touched from the game loop goroutine.
package game

import (
	"log"

	"github.com/chlobes/rps-game-client/internal/geom"
	"github.com/chlobes/rps-game-client/internal/protocol"
	"github.com/chlobes/rps-game-client/internal/render"
	"github.com/chlobes/rps-game-client/internal/types"
	"github.com/chlobes/rps-game-client/internal/widget"
)

// ClientState is the phase the server has put us in. It is replaced
// wholesale, never patched, when a packet moves us to another phase.
type ClientState interface {
	clientState()
}

type SafeZone struct {
	UnitStorage      []types.Unit
	EquipmentStorage []types.Equipment
}

type Looting struct{}

type InQueue struct{}

type InFight struct {
	// Chosen is set once we declined the fight and await the result.
	Chosen bool
}

func (SafeZone) clientState() {}
func (Looting) clientState()  {}
func (InQueue) clientState()  {}
func (InFight) clientState()  {}

// Sender delivers an intent to the server.
type Sender interface {
	Send(protocol.ClientPacket) error
}

// Selection is the detail panel currently open. Addr is nil when the panel
// shows something we cannot move items in or out of.
type Selection struct {
	Detail widget.Detail
	Addr   *protocol.InventoryType
}

type Game struct {
	out  Sender
	view geom.View

	// login
	loggedIn    bool
	loginName   string
	loginResult string
	status      string

	state        ClientState
	team         []types.Unit
	equipment    []types.Equipment
	depth        int
	gold         float64
	juice        float64
	moveOptions  []types.MoveOption
	opponent     []types.UnitView
	opponentName string

	replay   *Replay
	selected *Selection
	messages Messages

	// pointer
	mouse    geom.Vec2
	dragFrom *geom.Vec2

	// repair target entry
	repairTarget float64
	repairTyping bool
	repairText   string

	ctl   controls
	batch render.Batch
}

// New creates a client in the InQueue phase that sends its intents to out.
func New(out Sender) *Game {
	return &Game{
		out:          out,
		view:         geom.View{Aspect: 1},
		state:        InQueue{},
		repairTarget: protocol.DefaultRepairTarget,
		ctl:          newControls(),
	}
}

func (g *Game) SetView(v geom.View) { g.view = v }
func (g *Game) View() geom.View { return g.view }

func (g *Game) State() ClientState { return g.state }
func (g *Game) Team() []types.Unit { return g.team }
func (g *Game) Depth() int { return g.depth }
func (g *Game) Gold() float64 { return g.gold }
func (g *Game) Selected() *Selection { return g.selected }
func (g *Game) Replay() *Replay { return g.replay }
func (g *Game) Messages() []Message { return g.messages.items }
func (g *Game) MoveOptions() []types.MoveOption { return g.moveOptions }
func (g *Game) LoggedIn() bool { return g.loggedIn }
func (g *Game) LoginResult() string { return g.loginResult }
func (g *Game) RepairTarget() float64 { return g.repairTarget }

func (g *Game) safeZone() (SafeZone, bool) {
	s, ok := g.state.(SafeZone)
	return s, ok
}

// send logs and drops failed sends; the user can repeat the action.
func (g *Game) send(p protocol.ClientPacket) {
	if err := g.out.Send(p); err != nil {
		log.Printf("NET: send(%s) failed: %v", protocol.TypeOf(p), err)
	}
}

// Tick advances per-frame timers. It is called once per game update.
func (g *Game) Tick() {
	g.messages.Tick()
	if g.replay != nil && g.replay.Tick() {
		g.replay = nil
	}
}
