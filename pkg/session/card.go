package session

import "github.com/artem13815/careerlens/pkg/career"

// Panel is the secondary panel shown under a card. At most one is open.
type Panel string

const (
	PanelNone   Panel = ""
	PanelPrep   Panel = "prep"
	PanelLetter Panel = "letter"
)

func ParsePanel(s string) (Panel, error) {
	switch p := Panel(s); p {
	case PanelPrep, PanelLetter:
		return p, nil
	}
	return PanelNone, ErrUnknownPanel
}

type FetchStatus string

const (
	FetchIdle    FetchStatus = "idle"
	FetchLoading FetchStatus = "loading"
	FetchReady   FetchStatus = "ready"
	FetchFailed  FetchStatus = "failed"
)

// Fetch is the cached result of one lazily generated panel.
type Fetch[T any] struct {
	Status FetchStatus `json:"status"`
	Value  T           `json:"value,omitempty"`
	Error  string      `json:"error,omitempty"`
}

func (f Fetch[T]) needsFetch() bool {
	return f.Status == "" || f.Status == FetchIdle || f.Status == FetchFailed
}

func (f *Fetch[T]) start() { *f = Fetch[T]{Status: FetchLoading} }

func (f *Fetch[T]) finish(v T, err error, msg string) {
	if err != nil {
		*f = Fetch[T]{Status: FetchFailed, Error: msg}
		return
	}
	*f = Fetch[T]{Status: FetchReady, Value: v}
}

// Card is the view state of one job card.
type Card struct {
	Expanded bool
	Open     Panel
	Prep     Fetch[career.InterviewPrep]
	Letter   Fetch[string]
}

// Toggle opens p and closes the other panel, or closes p if it is already
// open. It reports whether p's content has to be fetched: content is
// fetched once, and again only after a failure.
func (c *Card) Toggle(p Panel) bool {
	if c.Open == p {
		c.Open = PanelNone
		return false
	}
	c.Open = p
	switch p {
	case PanelPrep:
		return c.Prep.needsFetch()
	case PanelLetter:
		return c.Letter.needsFetch()
	}
	return false
}
