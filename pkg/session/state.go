package session

import (
	"errors"
	"time"

	"github.com/artem13815/careerlens/pkg/career"
)

var (
	ErrNotFound          = errors.New("session not found")
	ErrInputLocked       = errors.New("input can only change before an analysis starts")
	ErrAlreadyRunning    = errors.New("analysis already in progress")
	ErrNoResults         = errors.New("no analysis results")
	ErrCardNotFound      = errors.New("card not found")
	ErrUnknownPanel      = errors.New("unknown panel")
	ErrUnknownTab        = errors.New("unknown tab")
	ErrInvalidTransition = errors.New("invalid state transition")
)

// MissingInputMessage is shown when analysis is requested with nothing to analyze.
const MissingInputMessage = "Please provide a resume text or upload an image."

// Phase names a state for clients.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseAnalyzing Phase = "analyzing"
	PhaseResults   Phase = "results"
	PhaseError     Phase = "error"
)

// State is one of Idle, Analyzing, Results or Failed. Only Session
// transition methods replace it.
type State interface {
	Phase() Phase
	sealed()
}

type Idle struct{}

// Analyzing holds the generation of the in-flight request; a completion
// carrying any other generation is stale.
type Analyzing struct {
	Generation uint64
	StartedAt  time.Time
}

// Results owns the analysis and per-card view state. Cards is indexed like
// Analysis.Flashcards.
type Results struct {
	Analysis career.Analysis
	Cards    []Card
}

type Failed struct {
	Message string
}

func (Idle) Phase() Phase      { return PhaseIdle }
func (Analyzing) Phase() Phase { return PhaseAnalyzing }
func (Results) Phase() Phase   { return PhaseResults }
func (Failed) Phase() Phase    { return PhaseError }

func (Idle) sealed()      {}
func (Analyzing) sealed() {}
func (Results) sealed()   {}
func (Failed) sealed()    {}

// Tab is the results view tab.
type Tab string

const (
	TabJobs   Tab = "jobs"
	TabResume Tab = "resume"
)

func ParseTab(s string) (Tab, error) {
	switch t := Tab(s); t {
	case TabJobs, TabResume:
		return t, nil
	}
	return "", ErrUnknownTab
}
