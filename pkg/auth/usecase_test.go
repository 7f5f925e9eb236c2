package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/careerlens/pkg/session"
)

type stubTokens struct{ err error }

func (s stubTokens) Generate(_ context.Context, u User) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "token-for-" + u.ID.String(), nil
}

func TestLogin_OpensSession(t *testing.T) {
	store := session.NewStore(session.Deps{}, 0)
	svc := NewAuthService(store, stubTokens{})

	res, err := svc.Login(context.Background(), LoginRequest{Email: " Google-User@Gmail.com ", Theme: session.ThemeDark, Query: "city=Pune"})
	require.NoError(t, err)
	assert.Equal(t, "google-user@gmail.com", res.User.Email)
	assert.Equal(t, "token-for-"+res.User.ID.String(), res.Token)

	got, err := store.Get(res.User.ID.String())
	require.NoError(t, err)
	assert.Same(t, res.Session, got)
	assert.Equal(t, "google-user@gmail.com", got.App().User())
	assert.Equal(t, session.ThemeDark, got.App().Theme())
	assert.Equal(t, "Pune", got.Input().City)

	require.NoError(t, svc.Logout(context.Background(), res.User.ID.String()))
	_, err = store.Get(res.User.ID.String())
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestLogin_Rejects(t *testing.T) {
	store := session.NewStore(session.Deps{}, 0)

	_, err := NewAuthService(store, stubTokens{}).Login(context.Background(), LoginRequest{Email: "not-an-email"})
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = NewAuthService(store, stubTokens{err: errors.New("sign")}).Login(context.Background(), LoginRequest{Email: "a@b.in"})
	assert.Error(t, err)
	assert.Zero(t, store.Len())
}
