package session

import (
	"time"

	"github.com/artem13815/careerlens/pkg/career"
)

// Snapshot is the read model a client renders.
type Snapshot struct {
	ID             string       `json:"id"`
	App            AppView      `json:"app"`
	Phase          Phase        `json:"phase"`
	Input          InputView    `json:"input"`
	LoadingMessage string       `json:"loadingMessage,omitempty"`
	Error          string       `json:"error,omitempty"`
	Results        *ResultsView `json:"results,omitempty"`
	Query          string       `json:"query"`
}

type AppView struct {
	User  string `json:"user"`
	Theme Theme  `json:"theme"`
}

// InputView is the form. The image itself is only exposed as its preview.
// FocusArea is the main role or industry autofill found in the résumé.
type InputView struct {
	ResumeText      string                 `json:"resumeText"`
	City            string                 `json:"city"`
	ExperienceLevel career.ExperienceLevel `json:"experienceLevel"`
	YearsExperience string                 `json:"yearsExperience"`
	Mode            career.Mode            `json:"mode"`
	MoreRoles       bool                   `json:"moreRoles"`
	HasImage        bool                   `json:"hasImage"`
	ImagePreview    string                 `json:"imagePreview,omitempty"`
	Truncated       bool                   `json:"truncated"`
	Autofilling     bool                   `json:"autofilling"`
	FocusArea       string                 `json:"focusArea,omitempty"`
	Error           string                 `json:"error,omitempty"`
}

type ResultsView struct {
	SummaryOfProfile string                `json:"summary_of_profile"`
	OverallAdvice    string                `json:"overall_advice"`
	Disclaimer       string                `json:"disclaimer"`
	GroundingURLs    []career.GroundingURL `json:"grounding_urls"`
	Tab              Tab                   `json:"tab"`
	Sort             career.Sorting        `json:"sort"`
	DemandMix        career.DemandMix      `json:"demand_mix"`
	Cards            []CardView            `json:"cards"`
	Audit            *AuditView            `json:"resume_audit,omitempty"`
}

// CardView is a job card in display order. Index is its stable position,
// used to address the card.
type CardView struct {
	Index int `json:"index"`
	career.JobCard
	LinkedInURL string                      `json:"linkedin_url"`
	Expanded    bool                        `json:"expanded"`
	OpenPanel   Panel                       `json:"open_panel"`
	Prep        Fetch[career.InterviewPrep] `json:"prep"`
	Letter      Fetch[string]               `json:"letter"`
}

type AuditView struct {
	career.ResumeAudit
	// DisplayScore is the animated counter value at snapshot time.
	DisplayScore int    `json:"display_score"`
	Label        string `json:"label"`
}

// Snapshot renders the session at the current time.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.deps.Now()

	snap := Snapshot{
		ID:    s.id,
		App:   AppView{User: s.app.User(), Theme: s.app.Theme()},
		Phase: s.state.Phase(),
		Input: InputView{
			ResumeText:      s.input.ResumeText,
			City:            s.input.City,
			ExperienceLevel: s.input.ExperienceLevel,
			YearsExperience: s.input.YearsExperience,
			Mode:            s.input.Mode,
			MoreRoles:       s.input.MoreRoles,
			HasImage:        s.input.HasImage(),
			ImagePreview:    s.preview,
			Truncated:       s.truncated,
			Autofilling:     s.autofilling,
			FocusArea:       s.focusArea,
			Error:           s.inputErr,
		},
		Query: s.query,
	}

	switch st := s.state.(type) {
	case Analyzing:
		snap.LoadingMessage = LoadingMessage(now.Sub(st.StartedAt))
	case Failed:
		snap.Error = st.Message
	case Results:
		snap.Results = s.resultsView(st, now)
	}
	return snap
}

func (s *Session) resultsView(st Results, now time.Time) *ResultsView {
	a := st.Analysis
	v := &ResultsView{
		SummaryOfProfile: a.SummaryOfProfile,
		OverallAdvice:    a.OverallAdvice,
		Disclaimer:       a.Disclaimer,
		GroundingURLs:    a.GroundingURLs,
		Tab:              s.tab,
		Sort:             s.sorting,
		DemandMix:        career.DemandMixOf(a.Flashcards),
		Cards:            make([]CardView, 0, len(a.Flashcards)),
	}
	for _, i := range career.SortedIndexes(a.Flashcards, s.sorting) {
		c := st.Cards[i]
		v.Cards = append(v.Cards, CardView{
			Index:       i,
			JobCard:     a.Flashcards[i],
			LinkedInURL: a.Flashcards[i].LinkedInURL(),
			Expanded:    c.Expanded,
			OpenPanel:   c.Open,
			Prep:        withStatus(c.Prep),
			Letter:      withStatus(c.Letter),
		})
	}
	if au := a.ResumeAudit; au != nil {
		display := 0
		if s.tab == TabResume {
			display = ScoreReveal(int(au.ATSCompatibilityScore), now.Sub(s.revealFrom))
		}
		v.Audit = &AuditView{
			ResumeAudit:  *au,
			DisplayScore: display,
			Label:        career.ATSLabel(au.ATSCompatibilityScore),
		}
	}
	return v
}

func withStatus[T any](f Fetch[T]) Fetch[T] {
	if f.Status == "" {
		f.Status = FetchIdle
	}
	return f
}
