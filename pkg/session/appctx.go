package session

import (
	"strings"
	"sync"
)

// Theme is the light/dark display preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme defaults to light unless the value is explicitly dark.
func ParseTheme(s string) Theme {
	if strings.EqualFold(strings.TrimSpace(s), string(ThemeDark)) {
		return ThemeDark
	}
	return ThemeLight
}

// AppContext carries the signed-in user and display preferences. It is
// owned by a Session and passed explicitly to whoever needs it.
type AppContext struct {
	mu    sync.RWMutex
	user  string
	theme Theme
}

func NewAppContext(user string, theme Theme) *AppContext {
	return &AppContext{user: user, theme: ParseTheme(string(theme))}
}

func (a *AppContext) User() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.user
}

func (a *AppContext) Theme() Theme {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.theme
}

func (a *AppContext) SetTheme(t Theme) {
	a.mu.Lock()
	a.theme = t
	a.mu.Unlock()
}

// ToggleTheme flips the theme and returns the new value.
func (a *AppContext) ToggleTheme() Theme {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.theme == ThemeDark {
		a.theme = ThemeLight
	} else {
		a.theme = ThemeDark
	}
	return a.theme
}
