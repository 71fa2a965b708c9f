package game

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	neturl "net/url"
	"sync"
	"time"

	"github.com/chlobes/rps-game-client/internal/protocol"
	"github.com/gorilla/websocket"
)

var ErrClosed = errors.New("net: write on closed")

// Net is one websocket session. A reader goroutine decodes inbound frames
// onto In; the channel is closed when the connection drops.
type Net struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	inCh   chan protocol.ServerPacket
	closed bool
}

func NewNet(wsURL string) (*Net, error) {
	log.Printf("WS dial: %s", wsURL)

	dialer := websocket.Dialer{
		HandshakeTimeout: 5 * time.Second,
		Proxy: func(*http.Request) (*neturl.URL, error) {
			return nil, nil
		},
	}
	c, resp, err := dialer.Dial(wsURL, nil)
	if err != nil {
		if resp != nil {
			_ = resp.Body.Close()
			return nil, fmt.Errorf("dial %s: %s: %w", wsURL, resp.Status, err)
		}
		return nil, fmt.Errorf("dial %s: %w", wsURL, err)
	}

	n := &Net{conn: c, inCh: make(chan protocol.ServerPacket, 128)}
	go n.reader(c)
	return n, nil
}

// In delivers decoded packets in arrival order.
func (n *Net) In() <-chan protocol.ServerPacket { return n.inCh }

func (n *Net) reader(c *websocket.Conn) {
	for {
		_, data, err := c.ReadMessage()
		if err != nil {
			log.Println("NET: read:", err)
			n.mu.Lock()
			n.closed = true
			n.conn = nil
			n.mu.Unlock()
			close(n.inCh)
			return
		}
		p, err := protocol.DecodeServer(data)
		if err != nil {
			log.Printf("NET: dropping frame: %v", err)
			continue
		}
		n.inCh <- p
	}
}

// Send writes p as one binary frame.
func (n *Net) Send(p protocol.ClientPacket) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed || n.conn == nil {
		return ErrClosed
	}
	b, err := protocol.EncodeClient(p)
	if err != nil {
		return err
	}
	if err := n.conn.WriteMessage(websocket.BinaryMessage, b); err != nil {
		n.closed = true
		_ = n.conn.Close()
		n.conn = nil
		return fmt.Errorf("write %s: %w", protocol.TypeOf(p), err)
	}
	return nil
}

// IsClosed reports whether Close() was called or the connection was torn down.
func (n *Net) IsClosed() bool {
	if n == nil {
		return true
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.closed
}

// Close closes the websocket and marks the Net as closed.
func (n *Net) Close() error {
	if n == nil {
		return nil
	}
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return nil
	}
	n.closed = true
	c := n.conn
	n.conn = nil
	n.mu.Unlock()

	if c != nil {
		return c.Close()
	}
	return nil
}
