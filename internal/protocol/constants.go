package protocol

const (
	GameName = "looter"

	// Port is the fixed websocket port of the game server.
	Port = 2794

	// Gold prices. Healing scales with how hurt the unit is and how many
	// perks it has collected.
	UnitCost = 20.0
	HealCost = 10.0

	DefaultRepairTarget = 5.0

	// MessageDuration is how long a transient message stays on screen, in seconds.
	MessageDuration = 30.0
)
