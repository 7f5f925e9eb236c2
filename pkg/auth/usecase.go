package auth

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/careerlens/pkg/session"
)

// AuthUseCase is the mocked local login.
type AuthUseCase interface {
	Login(ctx context.Context, req LoginRequest) (AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
}

// LoginRequest carries the display preferences the page had before login.
type LoginRequest struct {
	Email string
	Theme session.Theme
	Query string
}

type AuthResult struct {
	User    User
	Token   string
	Session *session.Session
}

type authService struct {
	sessions SessionStore
	tokens   TokenGenerator
}

// NewAuthService returns default implementation of AuthUseCase.
func NewAuthService(sessions SessionStore, tokens TokenGenerator) AuthUseCase {
	return &authService{sessions: sessions, tokens: tokens}
}

// Login accepts any well-formed email and opens a fresh session for it.
func (s *authService) Login(ctx context.Context, req LoginRequest) (AuthResult, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(req.Email))
	if err != nil {
		return AuthResult{}, ErrInvalidEmail
	}
	user := User{
		ID:        uuid.New(),
		Email:     strings.ToLower(addr.Address),
		CreatedAt: time.Now().UTC(),
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	sess := s.sessions.Open(user.ID.String(), user.Email, req.Theme, req.Query)
	return AuthResult{User: user, Token: token, Session: sess}, nil
}

// Logout closes the session, cancelling anything it still runs.
func (s *authService) Logout(_ context.Context, sessionID string) error {
	s.sessions.Close(sessionID)
	return nil
}
