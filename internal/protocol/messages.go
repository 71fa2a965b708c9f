package protocol

import "github.com/chlobes/rps-game-client/internal/types"

// ================= C -> S =================

// ClientPacket is an intent sent to the server.
type ClientPacket interface {
	clientType() string
}

// Purchase buys a unit (Index 0) or heals team unit Index-1.
type Purchase struct {
	Index int `json:"index"`
}

type PerkChoice struct {
	Unit   int `json:"unit"`
	Choice int `json:"choice"`
}

// Move picks a move option in the safe zone, or up/stay/down (0/1/2) while looting.
type Move struct {
	Option int `json:"option"`
}

type Fight struct {
	Accept bool `json:"accept"`
}

// Repair repairs the equipment at At up to Target durability.
type Repair struct {
	Target float64       `json:"target"`
	At     InventoryType `json:"at"`
}

// Juice converts the item at From into currency.
type Juice struct {
	From InventoryType `json:"from"`
}

type Transfer struct {
	From InventoryType `json:"from"`
	To   InventoryType `json:"to"`
}

// Auth logs in, or creates the account when Create is set. Hash is the
// password digest, never the password itself.
type Auth struct {
	Create bool     `json:"create"`
	Name   string   `json:"name"`
	Hash   [32]byte `json:"hash"`
}

func (Purchase) clientType() string   { return "Purchase" }
func (PerkChoice) clientType() string { return "PerkChoice" }
func (Move) clientType() string       { return "Move" }
func (Fight) clientType() string      { return "Fight" }
func (Repair) clientType() string     { return "Repair" }
func (Juice) clientType() string      { return "Juice" }
func (Transfer) clientType() string   { return "Transfer" }
func (Auth) clientType() string       { return "Auth" }

// ================= S -> C =================

// ServerPacket is a fully decoded inbound message.
type ServerPacket interface {
	serverType() string
}

type Message struct {
	Text string `json:"text"`
}

type SafeZoneInfo struct {
	MoveOptions      []types.MoveOption `json:"moveOptions"`
	UnitStorage      []types.Unit       `json:"unitStorage"`
	EquipmentStorage []types.Equipment  `json:"equipmentStorage"`
	Juice            float64            `json:"juice"`
}

type TeamUpdate struct {
	Units     []types.Unit      `json:"units"`
	Depth     int               `json:"depth"`
	Gold      float64           `json:"gold"`
	Equipment []types.Equipment `json:"equipment"`
}

type Opponent struct {
	Units []types.UnitView `json:"units"`
	Name  string           `json:"name"`
}

type FightResult struct {
	Recording types.FightRecording `json:"recording"`
	Name      string               `json:"name"`
}

type Loot struct{}

func (Message) serverType() string      { return "Message" }
func (SafeZoneInfo) serverType() string { return "SafeZoneInfo" }
func (TeamUpdate) serverType() string   { return "Team" }
func (Opponent) serverType() string     { return "Opponent" }
func (FightResult) serverType() string  { return "FightResult" }
func (Loot) serverType() string         { return "Loot" }

// TypeOf returns the wire type name of a packet, for logs.
func TypeOf(p any) string {
	switch p := p.(type) {
	case ClientPacket:
		return p.clientType()
	case ServerPacket:
		return p.serverType()
	default:
		return "?"
	}
}
