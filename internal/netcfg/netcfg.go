// Package netcfg derives the server address and login settings from the
// environment.
package netcfg

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/chlobes/rps-game-client/internal/protocol"
)

// DefaultIP is used when neither the location nor the environment name a server.
const DefaultIP = "192.168.1.55"

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getbool(k string) bool {
	b, _ := strconv.ParseBool(os.Getenv(k))
	return b
}

var (
	IP       = getenv("LOOTER_IP", DefaultIP)
	Location = getenv("LOOTER_LOCATION", "")
	Name     = getenv("LOOTER_NAME", "")
	Password = getenv("LOOTER_PASSWORD", "")
	Create   = getbool("LOOTER_CREATE")
	Debug    = getbool("LOOTER_DEBUG")
)

// IPFromLocation extracts the ip= query parameter of a page location.
func IPFromLocation(location string) (string, bool) {
	_, query, ok := strings.Cut(location, "?")
	if !ok {
		return "", false
	}
	q, err := url.ParseQuery(query)
	if err != nil {
		return "", false
	}
	ip := q.Get("ip")
	return ip, ip != ""
}

// ServerURL returns the websocket address of the game server. An ip= query
// parameter in location wins over fallback.
func ServerURL(location, fallback string) string {
	ip, ok := IPFromLocation(location)
	if !ok {
		ip = fallback
	}
	if ip == "" {
		ip = DefaultIP
	}
	return fmt.Sprintf("ws://%s:%d", ip, protocol.Port)
}
