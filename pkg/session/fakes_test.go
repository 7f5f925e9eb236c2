package session

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/artem13815/careerlens/pkg/career"
	"github.com/artem13815/careerlens/pkg/resume"
)

type fakeAnalyzer struct {
	release chan struct{}
	result  career.Analysis
	err     error
	calls   atomic.Int32
	lastIn  atomic.Value
}

func (f *fakeAnalyzer) Analyze(_ context.Context, in career.UserInput) (career.Analysis, error) {
	f.calls.Add(1)
	f.lastIn.Store(in)
	if f.release != nil {
		<-f.release
	}
	return f.result, f.err
}

type fakeProfiles struct {
	release chan struct{}
	meta    resume.Metadata
	ok      bool
	calls   atomic.Int32
}

func (f *fakeProfiles) Extract(_ context.Context, _ string) (resume.Metadata, bool) {
	f.calls.Add(1)
	if f.release != nil {
		<-f.release
	}
	return f.meta, f.ok
}

type fakeCoach struct {
	mu         sync.Mutex
	prepCalls  int
	letterCall int
	prepErr    error
	letterErr  error
	roles      []string
}

func (f *fakeCoach) InterviewPrep(_ context.Context, role, _ string) (career.InterviewPrep, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prepCalls++
	f.roles = append(f.roles, role)
	if f.prepErr != nil {
		return career.InterviewPrep{}, f.prepErr
	}
	return career.InterviewPrep{
		Questions:       []career.InterviewQuestion{{Question: "What is a JOIN?", Type: career.QuestionTechnical}},
		MissingKeywords: []string{"Power BI"},
	}, nil
}

func (f *fakeCoach) CoverLetter(_ context.Context, role, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.letterCall++
	f.roles = append(f.roles, role)
	if f.letterErr != nil {
		return "", f.letterErr
	}
	return "Dear [Hiring Manager Name],", nil
}

func (f *fakeCoach) counts() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.prepCalls, f.letterCall
}

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func newClock() *clock { return &clock{t: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)} }

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

var errBoom = errors.New("boom")

func threeCards() career.Analysis {
	return career.Analysis{
		SummaryOfProfile: "Final-year B.Sc. student with Excel and SQL.",
		Flashcards: []career.JobCard{
			{JobTitle: "MIS Executive", DemandLevel: career.DemandMedium, MatchScore: 70},
			{JobTitle: "Data Analyst", DemandLevel: career.DemandHigh, MatchScore: 82},
			{JobTitle: "Business Analyst", DemandLevel: career.DemandLow, MatchScore: 82},
		},
		GroundingURLs: []career.GroundingURL{},
		ResumeAudit:   &career.ResumeAudit{ATSCompatibilityScore: 64, KeyStrengths: []string{"SQL", "Excel"}},
	}
}
