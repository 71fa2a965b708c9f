package protocol

import (
	"encoding/binary"
	"errors"

	"golang.org/x/crypto/sha3"
)

// MaxNameBytes is the fixed capacity of the name field on the wire.
const MaxNameBytes = 32

var (
	ErrNameTooLong = errors.New("name too long")
	ErrEmptyLogin  = errors.New("name and password required")
)

// HashPassword returns the SHA3-256 digest of the length-prefixed password.
func HashPassword(password string) [32]byte {
	buf := make([]byte, 8+len(password))
	binary.LittleEndian.PutUint64(buf, uint64(len(password)))
	copy(buf[8:], password)
	return sha3.Sum256(buf)
}

// NewAuth validates the credentials locally and builds the login packet.
// Nothing should be sent when it returns an error.
func NewAuth(create bool, name, password string) (Auth, error) {
	if name == "" || password == "" {
		return Auth{}, ErrEmptyLogin
	}
	if len(name) > MaxNameBytes {
		return Auth{}, ErrNameTooLong
	}
	return Auth{Create: create, Name: name, Hash: HashPassword(password)}, nil
}
