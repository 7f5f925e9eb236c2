package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is the signed-in person. Login is mocked: there is no account
// store, and ID doubles as the id of the user's view session.
type User struct {
	ID        uuid.UUID
	Email     string
	CreatedAt time.Time
}
