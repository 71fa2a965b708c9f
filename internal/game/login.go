package game

import (
	"log"

	"github.com/chlobes/rps-game-client/internal/protocol"
)

// Login validates the credentials and sends an Auth packet. Validation
// failures are shown on the login screen and nothing is sent.
func (g *Game) Login(create bool, name, password string) error {
	auth, err := protocol.NewAuth(create, name, password)
	if err != nil {
		g.loginResult = err.Error()
		return err
	}
	g.loginName = name
	g.loginResult = ""
	if create {
		log.Printf("AUTH: creating account %q", name)
	} else {
		log.Printf("AUTH: logging in as %q", name)
	}
	g.send(auth)
	return nil
}

// LoginName is the name of the last login attempt.
func (g *Game) LoginName() string { return g.loginName }

// ResetLogin returns to the login screen. A new connection needs a new
// login.
func (g *Game) ResetLogin() {
	g.loggedIn = false
	g.loginResult = ""
}
