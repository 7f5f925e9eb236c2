package session

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/careerlens/pkg/analysis"
	"github.com/artem13815/careerlens/pkg/career"
	"github.com/artem13815/careerlens/pkg/resume"
)

func ptr[T any](v T) *T { return &v }

func newTestSession(t *testing.T, deps Deps) *Session {
	t.Helper()
	if deps.Now == nil {
		deps.Now = newClock().Now
	}
	s := New("s-1", NewAppContext("user@example.com", ThemeLight), deps, "")
	t.Cleanup(func() {
		s.Close()
		s.Wait()
	})
	return s
}

func withText(t *testing.T, s *Session, text string) {
	t.Helper()
	require.NoError(t, s.UpdateInput(InputPatch{ResumeText: ptr(text)}))
}

func TestAnalyze_IdleToResults(t *testing.T) {
	an := &fakeAnalyzer{release: make(chan struct{}), result: threeCards()}
	s := newTestSession(t, Deps{Analyzer: an})
	withText(t, s, "B.Sc. Statistics, SQL, Excel")
	require.NoError(t, s.UpdateInput(InputPatch{City: ptr("Pune"), Mode: ptr("deep")}))

	require.NoError(t, s.Analyze())
	assert.Equal(t, PhaseAnalyzing, s.State().Phase())
	snap := s.Snapshot()
	assert.Equal(t, LoadingMessages[0], snap.LoadingMessage)
	assert.Equal(t, "city=Pune&experienceLevel=fresher&mode=deep", snap.Query)

	close(an.release)
	s.Wait()

	res, ok := s.State().(Results)
	require.True(t, ok)
	assert.Equal(t, threeCards(), res.Analysis)
	assert.Len(t, res.Cards, 3)
	sent := an.lastIn.Load().(career.UserInput)
	assert.Equal(t, career.ModeDeep, sent.Mode)
}

func TestAnalyze_RequiresInput(t *testing.T) {
	an := &fakeAnalyzer{}
	s := newTestSession(t, Deps{Analyzer: an})

	err := s.Analyze()
	assert.ErrorIs(t, err, career.ErrEmptyInput)
	assert.Equal(t, PhaseIdle, s.State().Phase())
	assert.Equal(t, MissingInputMessage, s.Snapshot().Input.Error)
	assert.Zero(t, an.calls.Load())
}

func TestAnalyze_FailureThenRetry(t *testing.T) {
	an := &fakeAnalyzer{err: errBoom}
	s := newTestSession(t, Deps{Analyzer: an})
	withText(t, s, "resume")

	require.NoError(t, s.Analyze())
	s.Wait()
	failed, ok := s.State().(Failed)
	require.True(t, ok)
	assert.Equal(t, analysis.ErrAnalysisFailed.Error(), failed.Message)
	assert.Equal(t, failed.Message, s.Snapshot().Error)

	an.err = nil
	an.result = threeCards()
	require.NoError(t, s.Analyze())
	s.Wait()
	assert.Equal(t, PhaseResults, s.State().Phase())
}

func TestAnalyze_RejectedWhileRunningOrShowingResults(t *testing.T) {
	an := &fakeAnalyzer{release: make(chan struct{}), result: threeCards()}
	s := newTestSession(t, Deps{Analyzer: an})
	withText(t, s, "resume")

	require.NoError(t, s.Analyze())
	assert.ErrorIs(t, s.Analyze(), ErrAlreadyRunning)
	assert.ErrorIs(t, s.UpdateInput(InputPatch{City: ptr("Delhi")}), ErrInputLocked)

	close(an.release)
	s.Wait()
	assert.ErrorIs(t, s.Analyze(), ErrInvalidTransition)
	assert.EqualValues(t, 1, an.calls.Load())
}

func TestReset_DiscardsStaleAnalysis(t *testing.T) {
	an := &fakeAnalyzer{release: make(chan struct{}), result: threeCards()}
	s := newTestSession(t, Deps{Analyzer: an})
	withText(t, s, "resume")

	require.NoError(t, s.Analyze())
	s.Reset()
	close(an.release)
	s.Wait()

	assert.Equal(t, PhaseIdle, s.State().Phase())
	assert.Nil(t, s.Snapshot().Results)
}

func TestReset_ClearsFormButKeepsCityAndLevel(t *testing.T) {
	s := newTestSession(t, Deps{Analyzer: &fakeAnalyzer{result: threeCards()}})
	require.NoError(t, s.UpdateInput(InputPatch{
		ResumeText:      ptr(strings.Repeat("x", resume.MaxResumeChars+1)),
		City:            ptr("Kochi"),
		ExperienceLevel: ptr("mid-career"),
		YearsExperience: ptr("4"),
		MoreRoles:       ptr(true),
	}))
	_, err := s.Upload(context.Background(), resume.Upload{Filename: "me.png", Data: []byte("\x89PNG\r\n\x1a\n0000")}, false)
	require.NoError(t, err)
	require.NoError(t, s.Analyze())
	s.Wait()
	s.SetSorting(career.Sorting{Key: career.SortByDemand, Order: career.Ascending})
	require.NoError(t, s.SetTab(TabResume))

	s.Reset()

	snap := s.Snapshot()
	assert.Equal(t, PhaseIdle, snap.Phase)
	assert.Equal(t, "Kochi", snap.Input.City)
	assert.Equal(t, career.LevelMidCareer, snap.Input.ExperienceLevel)
	assert.Empty(t, snap.Input.ResumeText)
	assert.Empty(t, snap.Input.YearsExperience)
	assert.False(t, snap.Input.MoreRoles)
	assert.False(t, snap.Input.HasImage)
	assert.Empty(t, snap.Input.ImagePreview)
	assert.False(t, snap.Input.Truncated)
	assert.Empty(t, snap.Query)
	assert.Nil(t, snap.Results)

	// Sort settings are back to the default on the next results view.
	withText(t, s, "resume")
	require.NoError(t, s.Analyze())
	s.Wait()
	assert.Equal(t, career.DefaultSorting(), s.Snapshot().Results.Sort)
	assert.Equal(t, TabJobs, s.Snapshot().Results.Tab)
}

func TestUpload_PDFFailureKeepsIdleAndInput(t *testing.T) {
	s := newTestSession(t, Deps{Analyzer: &fakeAnalyzer{}})
	withText(t, s, "previous text")

	_, err := s.Upload(context.Background(), resume.Upload{Filename: "locked.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.7 encrypted")}, false)
	require.ErrorIs(t, err, resume.ErrPDFExtraction)

	snap := s.Snapshot()
	assert.Equal(t, PhaseIdle, snap.Phase)
	assert.Equal(t, "previous text", snap.Input.ResumeText)
	assert.Contains(t, snap.Input.Error, "Please try Copy & Paste.")
}

func TestUpload_OversizeKeepsPriorState(t *testing.T) {
	s := newTestSession(t, Deps{Analyzer: &fakeAnalyzer{}})
	_, err := s.Upload(context.Background(), resume.Upload{Filename: "scan.png", Data: []byte("\x89PNG\r\n\x1a\n0000")}, false)
	require.NoError(t, err)
	before := s.Input()

	_, err = s.Upload(context.Background(), resume.Upload{Filename: "cv.txt", ContentType: "text/plain", Size: resume.MaxFileBytes + 1, Data: []byte("x")}, false)
	require.ErrorIs(t, err, resume.ErrFileTooLarge)

	assert.Equal(t, before, s.Input())
	snap := s.Snapshot()
	assert.True(t, snap.Input.HasImage)
	assert.NotEmpty(t, snap.Input.ImagePreview)
	assert.Equal(t, "File is too large. Please upload a file smaller than 2MB.", snap.Input.Error)
}

func TestUpload_DocumentClearsImageAndFlagsTruncation(t *testing.T) {
	s := newTestSession(t, Deps{Analyzer: &fakeAnalyzer{}})
	_, err := s.Upload(context.Background(), resume.Upload{Filename: "scan.png", Data: []byte("\x89PNG\r\n\x1a\n0000")}, false)
	require.NoError(t, err)
	require.True(t, s.Snapshot().Input.HasImage)

	long := strings.Repeat("a", resume.MaxResumeChars+5)
	_, err = s.Upload(context.Background(), resume.Upload{Filename: "cv.txt", ContentType: "text/plain", Data: []byte(long)}, false)
	require.NoError(t, err)

	snap := s.Snapshot()
	assert.False(t, snap.Input.HasImage)
	assert.Empty(t, snap.Input.ImagePreview)
	assert.True(t, snap.Input.Truncated)
	assert.Len(t, snap.Input.ResumeText, resume.MaxResumeChars)

	_, err = s.Upload(context.Background(), resume.Upload{Filename: "short.txt", ContentType: "text/plain", Data: []byte("short")}, false)
	require.NoError(t, err)
	assert.False(t, s.Snapshot().Input.Truncated)
}

func TestUpload_AutofillMergesMetadata(t *testing.T) {
	pr := &fakeProfiles{meta: resume.Metadata{City: "Noida", ExperienceLevel: career.LevelEarlyCareer, FocusArea: "Data Analytics"}, ok: true}
	s := newTestSession(t, Deps{Analyzer: &fakeAnalyzer{}, Profiles: pr})
	require.NoError(t, s.UpdateInput(InputPatch{YearsExperience: ptr("2")}))

	_, err := s.Upload(context.Background(), resume.Upload{Filename: "cv.txt", ContentType: "text/plain", Data: []byte("short")}, false)
	require.NoError(t, err)
	s.Wait()
	assert.Zero(t, pr.calls.Load())

	_, err = s.Upload(context.Background(), resume.Upload{Filename: "profile.txt", ContentType: "text/plain", Data: []byte("short")}, true)
	require.NoError(t, err)
	s.Wait()

	in := s.Input()
	assert.Equal(t, "Noida", in.City)
	assert.Equal(t, career.LevelEarlyCareer, in.ExperienceLevel)
	assert.Equal(t, "2", in.YearsExperience)
	snap := s.Snapshot()
	assert.False(t, snap.Input.Autofilling)
	assert.Equal(t, "Data Analytics", snap.Input.FocusArea)

	s.Reset()
	assert.Empty(t, s.Snapshot().Input.FocusArea)
}

func TestUpload_AutofillFailureKeepsFields(t *testing.T) {
	pr := &fakeProfiles{ok: false}
	s := newTestSession(t, Deps{Analyzer: &fakeAnalyzer{}, Profiles: pr})
	require.NoError(t, s.UpdateInput(InputPatch{City: ptr("Jaipur")}))

	_, err := s.Upload(context.Background(), resume.Upload{Filename: "cv.txt", ContentType: "text/plain", Data: []byte(strings.Repeat("experience ", 10))}, false)
	require.NoError(t, err)
	s.Wait()

	assert.EqualValues(t, 1, pr.calls.Load())
	assert.Equal(t, "Jaipur", s.Input().City)
	assert.Empty(t, s.Snapshot().Input.Error)
}

func TestReset_DiscardsStaleAutofill(t *testing.T) {
	pr := &fakeProfiles{release: make(chan struct{}), meta: resume.Metadata{City: "Mumbai"}, ok: true}
	s := newTestSession(t, Deps{Analyzer: &fakeAnalyzer{}, Profiles: pr})
	require.NoError(t, s.UpdateInput(InputPatch{City: ptr("Kochi")}))

	_, err := s.Upload(context.Background(), resume.Upload{Filename: "cv.txt", ContentType: "text/plain", Data: []byte("x")}, true)
	require.NoError(t, err)
	assert.True(t, s.Snapshot().Input.Autofilling)

	s.Reset()
	close(pr.release)
	s.Wait()

	assert.Equal(t, "Kochi", s.Input().City)
	assert.False(t, s.Snapshot().Input.Autofilling)
}

func TestRemoveImage(t *testing.T) {
	s := newTestSession(t, Deps{Analyzer: &fakeAnalyzer{}})
	_, err := s.Upload(context.Background(), resume.Upload{Filename: "scan.webp", ContentType: "image/webp", Data: []byte("RIFF0000WEBPVP8 ")}, false)
	require.NoError(t, err)
	require.NoError(t, s.RemoveImage())
	assert.False(t, s.Snapshot().Input.HasImage)
	assert.Empty(t, s.Snapshot().Input.ImagePreview)
}

func TestUpdateInput_Validation(t *testing.T) {
	s := newTestSession(t, Deps{Analyzer: &fakeAnalyzer{}})
	assert.Error(t, s.UpdateInput(InputPatch{Mode: ptr("turbo")}))
	require.NoError(t, s.UpdateInput(InputPatch{ExperienceLevel: ptr("10_years")}))
	assert.Equal(t, career.LevelFresher, s.Input().ExperienceLevel)
}

func TestNew_SeedsFromQuery(t *testing.T) {
	s := New("q", nil, Deps{Analyzer: &fakeAnalyzer{}}, "city=Indore&experienceLevel=student&mode=search")
	defer s.Close()
	in := s.Input()
	assert.Equal(t, "Indore", in.City)
	assert.Equal(t, career.LevelStudent, in.ExperienceLevel)
	assert.Equal(t, career.ModeFast, in.Mode)
	assert.Equal(t, ThemeLight, s.App().Theme())
}

func TestSnapshot_SortedCardsKeepIndexes(t *testing.T) {
	s := newTestSession(t, Deps{Analyzer: &fakeAnalyzer{result: threeCards()}})
	withText(t, s, "resume")
	require.NoError(t, s.Analyze())
	s.Wait()

	titles := func() ([]string, []int) {
		var ts []string
		var is []int
		for _, c := range s.Snapshot().Results.Cards {
			ts = append(ts, c.JobTitle)
			is = append(is, c.Index)
		}
		return ts, is
	}

	ts, is := titles()
	// Tied scores fall back to position, in the same direction.
	assert.Equal(t, []string{"Business Analyst", "Data Analyst", "MIS Executive"}, ts)
	assert.Equal(t, []int{2, 1, 0}, is)

	s.SetSorting(career.Sorting{Key: career.SortByDemand, Order: career.Descending})
	ts, _ = titles()
	assert.Equal(t, []string{"Data Analyst", "MIS Executive", "Business Analyst"}, ts)

	card := s.Snapshot().Results.Cards[0]
	assert.Equal(t, "https://www.linkedin.com/jobs/search/?keywords=", card.LinkedInURL)
	assert.Equal(t, FetchIdle, card.Prep.Status)
}

func TestSnapshot_DemandMix(t *testing.T) {
	s := newTestSession(t, Deps{Analyzer: &fakeAnalyzer{result: threeCards()}})
	withText(t, s, "resume")
	require.NoError(t, s.Analyze())
	s.Wait()

	mix := s.Snapshot().Results.DemandMix
	assert.Equal(t, 3, mix.Total)
	assert.Equal(t, 1, mix.High.Count)
	assert.InDelta(t, 33.33, mix.High.Percent, 0.01)
	assert.Equal(t, 1, mix.Low.Count)
}

func TestSnapshot_ScoreRevealFollowsResumeTab(t *testing.T) {
	clk := newClock()
	s := newTestSession(t, Deps{Analyzer: &fakeAnalyzer{result: threeCards()}, Now: clk.Now})
	withText(t, s, "resume")
	require.NoError(t, s.Analyze())
	s.Wait()

	audit := s.Snapshot().Results.Audit
	require.NotNil(t, audit)
	assert.Equal(t, 0, audit.DisplayScore)
	assert.Equal(t, "Good", audit.Label)

	require.NoError(t, s.SetTab(TabResume))
	clk.Advance(RevealDuration / 2)
	mid := s.Snapshot().Results.Audit.DisplayScore
	assert.Greater(t, mid, 32)
	assert.Less(t, mid, 64)

	clk.Advance(time.Second)
	assert.Equal(t, 64, s.Snapshot().Results.Audit.DisplayScore)
	assert.ErrorIs(t, s.SetTab("audit"), ErrUnknownTab)
}
