// Package session hosts the per-user view state machine: the résumé form,
// the analysis lifecycle and the result cards.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/artem13815/careerlens/pkg/analysis"
	"github.com/artem13815/careerlens/pkg/career"
	"github.com/artem13815/careerlens/pkg/coach"
	"github.com/artem13815/careerlens/pkg/resume"
)

// Deps are the services a session calls into. Profiles and Coach may be nil.
type Deps struct {
	Analyzer analysis.UseCase
	Profiles resume.ProfileExtractor
	Coach    coach.UseCase
	Now      func() time.Time
}

// Session is one user's view state. All methods are safe for concurrent use.
type Session struct {
	id   string
	app  *AppContext
	deps Deps

	mu          sync.Mutex
	state       State
	input       career.UserInput
	preview     string
	truncated   bool
	inputErr    string
	autofilling bool
	focusArea   string
	sorting     career.Sorting
	tab         Tab
	revealFrom  time.Time
	query       string

	// gen invalidates in-flight analysis and card fetches; metaGen
	// invalidates autofill. Both move on Reset.
	gen     uint64
	metaGen uint64
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// New creates a session in the Idle state. query is the page query string
// the client was opened with; it seeds city and experience level.
func New(id string, app *AppContext, deps Deps, query string) *Session {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if app == nil {
		app = NewAppContext("", ThemeLight)
	}
	s := &Session{
		id:      id,
		app:     app,
		deps:    deps,
		state:   Idle{},
		input:   career.Defaults(),
		sorting: career.DefaultSorting(),
		tab:     TabJobs,
	}
	if query != "" {
		ParsePrefs(query).seed(&s.input)
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())
	return s
}

func (s *Session) ID() string { return s.id }

func (s *Session) App() *AppContext { return s.app }

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Input returns a copy of the current form input.
func (s *Session) Input() career.UserInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input
}

// Wait blocks until background work started so far has returned.
func (s *Session) Wait() { s.wg.Wait() }

// Close cancels in-flight work. The session must not be used afterwards.
func (s *Session) Close() {
	s.mu.Lock()
	s.cancel()
	s.gen++
	s.metaGen++
	s.mu.Unlock()
}

// InputPatch carries form edits; nil fields are left alone.
type InputPatch struct {
	ResumeText      *string
	City            *string
	ExperienceLevel *string
	YearsExperience *string
	Mode            *string
	MoreRoles       *bool
}

// UpdateInput applies form edits. Text over the cap is truncated and
// flagged, as with uploads.
func (s *Session) UpdateInput(p InputPatch) error {
	var mode career.Mode
	if p.Mode != nil {
		m, err := career.ParseMode(*p.Mode)
		if err != nil {
			return err
		}
		mode = m
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.editable() {
		return ErrInputLocked
	}
	if p.ResumeText != nil {
		s.input.ResumeText, s.truncated = resume.Truncate(*p.ResumeText)
	}
	if p.City != nil {
		s.input.City = *p.City
	}
	if p.ExperienceLevel != nil {
		s.input.ExperienceLevel = career.NormalizeExperienceLevel(*p.ExperienceLevel)
	}
	if p.YearsExperience != nil {
		s.input.YearsExperience = *p.YearsExperience
	}
	if p.Mode != nil {
		s.input.Mode = mode
	}
	if p.MoreRoles != nil {
		s.input.MoreRoles = *p.MoreRoles
	}
	return nil
}

// Upload normalizes a file into the form. On error the input is left as
// it was and the user-facing message is kept for display. A text document
// long enough (or coming from a profile link) starts metadata autofill in
// the background.
func (s *Session) Upload(ctx context.Context, u resume.Upload, fromProfileLink bool) (resume.Document, error) {
	s.mu.Lock()
	ok := s.editable()
	s.mu.Unlock()
	if !ok {
		return resume.Document{}, ErrInputLocked
	}

	doc, err := resume.Normalize(ctx, u)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.editable() {
		return resume.Document{}, ErrInputLocked
	}
	if err != nil {
		s.inputErr = resume.UserMessage(err)
		return resume.Document{}, err
	}

	s.inputErr = ""
	s.truncated = false
	if doc.Kind == resume.KindImage {
		s.input.Image = doc.Image
		s.preview = doc.Preview
		return doc, nil
	}
	if doc.ClearsImage() {
		s.input.Image = nil
		s.preview = ""
	}
	// An empty extraction keeps whatever text was there.
	if doc.Text != "" {
		s.input.ResumeText = doc.Text
		s.truncated = doc.Truncated
	}
	if s.deps.Profiles != nil && resume.ShouldAutofill(doc, fromProfileLink) {
		s.startAutofill(doc.Text)
	}
	return doc, nil
}

func (s *Session) startAutofill(text string) {
	s.metaGen++
	gen := s.metaGen
	ctx := s.ctx
	s.autofilling = true
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		meta, ok := s.deps.Profiles.Extract(ctx, text)

		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.metaGen {
			return
		}
		s.autofilling = false
		if ok {
			meta.ApplyTo(&s.input)
			if meta.FocusArea != "" {
				s.focusArea = meta.FocusArea
			}
		}
	}()
}

// RemoveImage drops the attached image and its preview.
func (s *Session) RemoveImage() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.editable() {
		return ErrInputLocked
	}
	s.input.Image = nil
	s.preview = ""
	return nil
}

// Analyze moves Idle or Failed to Analyzing and runs the request in the
// background. It fails without a transition when the input is empty.
func (s *Session) Analyze() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state.(type) {
	case Idle, Failed:
	case Analyzing:
		return ErrAlreadyRunning
	default:
		return fmt.Errorf("%w: analyze from %s", ErrInvalidTransition, s.state.Phase())
	}
	if err := s.input.Validate(); err != nil {
		s.inputErr = MissingInputMessage
		return err
	}

	s.gen++
	gen := s.gen
	s.state = Analyzing{Generation: gen, StartedAt: s.deps.Now()}
	s.inputErr = ""
	s.tab = TabJobs
	s.query = prefsOf(s.input).Encode()

	in := s.input
	ctx := s.ctx
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		a, err := s.deps.Analyzer.Analyze(ctx, in)

		s.mu.Lock()
		defer s.mu.Unlock()
		if err != nil {
			s.fail(gen, err)
			return
		}
		s.complete(gen, a)
	}()
	return nil
}

func (s *Session) current(gen uint64) bool {
	st, ok := s.state.(Analyzing)
	return ok && st.Generation == gen && gen == s.gen
}

func (s *Session) complete(gen uint64, a career.Analysis) {
	if !s.current(gen) {
		log.Printf("session %s: dropping stale analysis (generation %d)", s.id, gen)
		return
	}
	s.state = Results{Analysis: a, Cards: make([]Card, len(a.Flashcards))}
}

func (s *Session) fail(gen uint64, err error) {
	if !s.current(gen) {
		return
	}
	log.Printf("session %s: analysis failed: %v", s.id, err)
	msg := analysis.ErrAnalysisFailed.Error()
	if errors.Is(err, career.ErrEmptyInput) {
		msg = MissingInputMessage
	}
	s.state = Failed{Message: msg}
}

// Reset returns to Idle from any state. In-flight work is cancelled and
// its results discarded. City, experience level and mode survive; the
// rest of the form is cleared.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancel()
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.gen++
	s.metaGen++

	s.state = Idle{}
	s.input = career.UserInput{
		City:            s.input.City,
		ExperienceLevel: s.input.ExperienceLevel,
		Mode:            s.input.Mode,
	}
	s.preview = ""
	s.truncated = false
	s.inputErr = ""
	s.autofilling = false
	s.focusArea = ""
	s.sorting = career.DefaultSorting()
	s.tab = TabJobs
	s.revealFrom = time.Time{}
	s.query = ""
}

// SetSorting changes the card order of the results view.
func (s *Session) SetSorting(so career.Sorting) {
	s.mu.Lock()
	s.sorting = so
	s.mu.Unlock()
}

// SetTab switches the results tab. Opening the résumé tab restarts the
// score reveal.
func (s *Session) SetTab(t Tab) error {
	if _, err := ParseTab(string(t)); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if t == TabResume && s.tab != TabResume {
		s.revealFrom = s.deps.Now()
	}
	s.tab = t
	return nil
}

// ToggleExpanded shows or hides the details of a card.
func (s *Session) ToggleExpanded(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.results(index)
	if err != nil {
		return err
	}
	res.Cards[index].Expanded = !res.Cards[index].Expanded
	return nil
}

// TogglePanel opens or closes a card panel, starting the panel's fetch
// when it has no content yet. A failed fetch only marks that panel.
func (s *Session) TogglePanel(index int, p Panel) (Card, error) {
	if _, err := ParsePanel(string(p)); err != nil {
		return Card{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.results(index)
	if err != nil {
		return Card{}, err
	}
	card := &res.Cards[index]
	if card.Toggle(p) {
		s.fetchPanel(index, p, res.Analysis.Flashcards[index].JobTitle)
	}
	return *card, nil
}

func (s *Session) results(index int) (Results, error) {
	res, ok := s.state.(Results)
	if !ok {
		return Results{}, ErrNoResults
	}
	if index < 0 || index >= len(res.Cards) {
		return Results{}, ErrCardNotFound
	}
	return res, nil
}

func (s *Session) fetchPanel(index int, p Panel, role string) {
	res := s.state.(Results)
	card := &res.Cards[index]
	if p == PanelPrep {
		card.Prep.start()
	} else {
		card.Letter.start()
	}
	if s.deps.Coach == nil {
		s.finishPanel(s.gen, index, p, nil, errors.New("coach not configured"))
		return
	}

	gen := s.gen
	ctx := s.ctx
	text := s.input.ResumeText
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		var (
			v   any
			err error
		)
		if p == PanelPrep {
			v, err = s.deps.Coach.InterviewPrep(ctx, role, text)
		} else {
			v, err = s.deps.Coach.CoverLetter(ctx, role, text)
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		s.finishPanel(gen, index, p, v, err)
	}()
}

func (s *Session) finishPanel(gen uint64, index int, p Panel, v any, err error) {
	if gen != s.gen {
		return
	}
	res, ok := s.state.(Results)
	if !ok || index >= len(res.Cards) {
		return
	}
	card := &res.Cards[index]
	switch p {
	case PanelPrep:
		prep, _ := v.(career.InterviewPrep)
		card.Prep.finish(prep, err, coach.ErrPrepFailed.Error())
	case PanelLetter:
		letter, _ := v.(string)
		card.Letter.finish(letter, err, coach.ErrLetterFailed.Error())
	}
}

func (s *Session) editable() bool {
	switch s.state.(type) {
	case Idle, Failed:
		return true
	}
	return false
}
