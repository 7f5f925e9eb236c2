package auth

import (
	"errors"

	"github.com/artem13815/careerlens/pkg/session"
)

var ErrInvalidEmail = errors.New("invalid email")

// SessionStore is where a login opens the user's view session.
type SessionStore interface {
	Open(id, user string, theme session.Theme, query string) *session.Session
	Close(id string)
}
