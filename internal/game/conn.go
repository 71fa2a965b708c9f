package game

import (
	"log"
	"time"

	"golang.org/x/time/rate"

	"github.com/chlobes/rps-game-client/internal/protocol"
)

type connState int

const (
	stateIdle connState = iota
	stateConnecting
	stateConnected
	stateFailed
)

type connResult struct {
	n   *Net
	err error
}

// RetryInterval is the minimum time between two dial attempts.
const RetryInterval = 2 * time.Second

// Conn keeps a Net to one server alive. Dials run on their own goroutine;
// everything else is called from the game loop.
type Conn struct {
	url     string
	dial    func(string) (*Net, error)
	limiter *rate.Limiter
	connCh  chan connResult
	st      connState
	errMsg  string
	net     *Net
}

func NewConn(url string) *Conn {
	return &Conn{
		url:     url,
		dial:    NewNet,
		limiter: rate.NewLimiter(rate.Every(RetryInterval), 1),
		connCh:  make(chan connResult, 1),
	}
}

func (c *Conn) connectAsync() {
	n, err := c.dial(c.url)
	c.connCh <- connResult{n: n, err: err}
}

// Maintain collects a finished dial, notices a dropped connection and
// starts a new dial when allowed. It reports whether a connection came up
// during this call.
func (c *Conn) Maintain() bool {
	select {
	case res := <-c.connCh:
		if res.err != nil {
			log.Printf("NET: dial failed: %v", res.err)
			c.st = stateFailed
			c.errMsg = res.err.Error()
			break
		}
		log.Println("NET: connected")
		c.net = res.n
		c.st = stateConnected
		c.errMsg = ""
		return true
	default:
	}

	if c.st == stateConnected && c.net.IsClosed() {
		log.Println("NET: connection lost")
		c.st = stateFailed
		c.errMsg = "connection lost"
	}
	if (c.st == stateIdle || c.st == stateFailed) && c.limiter.Allow() {
		c.st = stateConnecting
		go c.connectAsync()
	}
	return false
}

// Drain hands every packet received so far to apply, in arrival order.
func (c *Conn) Drain(apply func(protocol.ServerPacket)) {
	if c.net == nil {
		return
	}
	for {
		select {
		case p, ok := <-c.net.In():
			if !ok {
				return
			}
			apply(p)
		default:
			return
		}
	}
}

func (c *Conn) Send(p protocol.ClientPacket) error {
	if c.st != stateConnected {
		return ErrClosed
	}
	return c.net.Send(p)
}

func (c *Conn) Connected() bool { return c.st == stateConnected && !c.net.IsClosed() }

// Status is a one-line description of the connection for the login screen.
func (c *Conn) Status() string {
	switch c.st {
	case stateConnecting:
		return "connecting to " + c.url
	case stateConnected:
		return "connected"
	case stateFailed:
		return "connection failed: " + c.errMsg
	default:
		return "not connected"
	}
}

func (c *Conn) Close() error {
	if c.net == nil {
		return nil
	}
	return c.net.Close()
}
