package game

import (
	"github.com/chlobes/rps-game-client/internal/geom"
	"github.com/chlobes/rps-game-client/internal/protocol"
	"github.com/chlobes/rps-game-client/internal/render"
	"github.com/chlobes/rps-game-client/internal/widget"
)

// tickSeconds is the simulated time of one update.
const tickSeconds = 1.0 / 60

// Message is a transient notice with its remaining lifetime in seconds.
type Message struct {
	Text string
	Life float64
}

// Messages is the queue of transient notices, oldest first.
type Messages struct {
	items []Message
}

func (m *Messages) Push(text string) {
	m.items = append(m.items, Message{Text: text, Life: protocol.MessageDuration})
}

// Tick ages every message and drops the expired ones in place, keeping the
// order of the rest.
func (m *Messages) Tick() {
	kept := m.items[:0]
	for _, msg := range m.items {
		msg.Life -= tickSeconds
		if msg.Life > 0 {
			kept = append(kept, msg)
		}
	}
	clear(m.items[len(kept):])
	m.items = kept
}

func (m *Messages) Len() int { return len(m.items) }

// draw stacks the messages upward from the bottom-right corner, fading
// them out over their last two seconds.
func (m *Messages) draw(l *render.List, v geom.View) {
	p := geom.V(v.Right(), v.Bottom())
	for _, msg := range m.items {
		n := float64(len([]rune(msg.Text)))
		at := p.Sub(geom.V(textSize.X*n, 0))
		l.TextBlended(at, 30, textSize, msg.Text, float32(min(msg.Life/2, 1)), render.Transparent)
		p.Y += textSize.Y * widget.Gap
	}
}
