package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrUnknownPacket = errors.New("protocol: unknown packet type")

// MsgEnvelope is the frame layout on the wire.
type MsgEnvelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// EncodeClient serializes an outbound packet into one binary frame payload.
func EncodeClient(p ClientPacket) ([]byte, error) {
	return encode(p.clientType(), p)
}

// EncodeServer is the server-side counterpart, used by tools and tests.
func EncodeServer(p ServerPacket) ([]byte, error) {
	return encode(p.serverType(), p)
}

func encode(typ string, v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("protocol: encode %s: %w", typ, err)
	}
	return json.Marshal(MsgEnvelope{Type: typ, Data: data})
}

// DecodeServer decodes a whole inbound frame. On error nothing is returned,
// so callers never see a partially decoded packet.
func DecodeServer(b []byte) (ServerPacket, error) {
	var env MsgEnvelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("protocol: envelope: %w", err)
	}
	var p ServerPacket
	switch env.Type {
	case "Message":
		p = &Message{}
	case "SafeZoneInfo":
		p = &SafeZoneInfo{}
	case "Team":
		p = &TeamUpdate{}
	case "Opponent":
		p = &Opponent{}
	case "FightResult":
		p = &FightResult{}
	case "Loot":
		return Loot{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPacket, env.Type)
	}
	if len(env.Data) == 0 {
		return nil, fmt.Errorf("protocol: %s: missing data", env.Type)
	}
	if err := json.Unmarshal(env.Data, p); err != nil {
		return nil, fmt.Errorf("protocol: %s: %w", env.Type, err)
	}
	return deref(p), nil
}

func deref(p ServerPacket) ServerPacket {
	switch v := p.(type) {
	case *Message:
		return *v
	case *SafeZoneInfo:
		return *v
	case *TeamUpdate:
		return *v
	case *Opponent:
		return *v
	case *FightResult:
		return *v
	}
	return p
}
