package game

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/chlobes/rps-game-client/internal/protocol"
)

// echoServer greets every client with a Message and reports the type of
// the first frame it receives.
func echoServer(t *testing.T) (string, <-chan string) {
	t.Helper()
	got := make(chan string, 1)
	up := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := up.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer c.Close()
		hello, _ := protocol.EncodeServer(protocol.Message{Text: "hello"})
		if err := c.WriteMessage(websocket.BinaryMessage, []byte("not json")); err != nil {
			return
		}
		if err := c.WriteMessage(websocket.BinaryMessage, hello); err != nil {
			return
		}
		_, data, err := c.ReadMessage()
		if err != nil {
			return
		}
		var env protocol.MsgEnvelope
		_ = json.Unmarshal(data, &env)
		got <- env.Type
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http"), got
}

func TestNetRoundTrip(t *testing.T) {
	url, got := echoServer(t)
	n, err := NewNet(url)
	if err != nil {
		t.Fatal(err)
	}
	defer n.Close()

	select {
	case p := <-n.In():
		if m, ok := p.(protocol.Message); !ok || m.Text != "hello" {
			t.Fatalf("want hello message, got %#v", p)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no packet received")
	}
	if err := n.Send(protocol.Purchase{Index: 0}); err != nil {
		t.Fatal(err)
	}
	select {
	case typ := <-got:
		if typ != "Purchase" {
			t.Fatalf("want Purchase, got %q", typ)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server got nothing")
	}
}

func TestNetSendAfterClose(t *testing.T) {
	url, _ := echoServer(t)
	n, err := NewNet(url)
	if err != nil {
		t.Fatal(err)
	}
	n.Close()
	if !n.IsClosed() {
		t.Fatal("want closed")
	}
	if err := n.Send(protocol.Purchase{}); !errors.Is(err, ErrClosed) {
		t.Fatalf("want ErrClosed, got %v", err)
	}
}

func TestConnRetriesNoFasterThanInterval(t *testing.T) {
	var dials atomic.Int32
	c := NewConn("ws://unused")
	c.dial = func(string) (*Net, error) {
		dials.Add(1)
		return nil, errors.New("refused")
	}

	deadline := time.Now().Add(time.Second)
	for c.st != stateFailed && time.Now().Before(deadline) {
		c.Maintain()
		time.Sleep(time.Millisecond)
	}
	if c.st != stateFailed {
		t.Fatalf("want failed, got %v", c.st)
	}
	for i := 0; i < 10; i++ {
		c.Maintain()
	}
	if n := dials.Load(); n != 1 {
		t.Fatalf("want one dial inside the retry interval, got %d", n)
	}
	if err := c.Send(protocol.Purchase{}); !errors.Is(err, ErrClosed) {
		t.Fatalf("want ErrClosed while disconnected, got %v", err)
	}
}

func TestConnDrainsInOrder(t *testing.T) {
	url, _ := echoServer(t)
	c := NewConn(url)
	defer c.Close()

	deadline := time.Now().Add(5 * time.Second)
	for !c.Connected() && time.Now().Before(deadline) {
		c.Maintain()
		time.Sleep(time.Millisecond)
	}
	if !c.Connected() {
		t.Fatalf("not connected: %s", c.Status())
	}
	var got []protocol.ServerPacket
	for len(got) == 0 && time.Now().Before(deadline) {
		c.Drain(func(p protocol.ServerPacket) { got = append(got, p) })
		time.Sleep(time.Millisecond)
	}
	if len(got) != 1 {
		t.Fatalf("want the one decodable packet, got %v", got)
	}
}
