package resume

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/careerlens/pkg/career"
	"github.com/artem13815/careerlens/pkg/llm/llmtest"
)

func TestExtract_ParsesAndCoerces(t *testing.T) {
	stub := &llmtest.Stub{Text: "```json\n{\"city\":\"bengaluru\",\"experienceLevel\":\"5_plus_years\",\"yearsExperience\":6,\"focusArea\":\"Backend\"}\n```"}
	svc := NewProfileService(stub, "gemini-2.5-flash")

	meta, ok := svc.Extract(context.Background(), "Senior engineer at Flipkart, Bengaluru")
	require.True(t, ok)
	assert.Equal(t, "Bengaluru", meta.City)
	assert.Equal(t, career.LevelFresher, meta.ExperienceLevel)
	assert.Equal(t, "6", meta.YearsExperience)
	assert.Equal(t, "Backend", meta.FocusArea)

	req := stub.Last()
	assert.Equal(t, "gemini-2.5-flash", req.Model)
	assert.True(t, req.JSONResponse)
	assert.Empty(t, req.Tools)
}

func TestExtract_KeepsKnownLevelAndMixedCaseCity(t *testing.T) {
	stub := &llmtest.Stub{Text: `{"city":"NCR - Gurugram","experienceLevel":"early-career","yearsExperience":"2"}`}
	meta, ok := NewProfileService(stub, "m").Extract(context.Background(), "resume")
	require.True(t, ok)
	assert.Equal(t, "NCR - Gurugram", meta.City)
	assert.Equal(t, career.LevelEarlyCareer, meta.ExperienceLevel)
	assert.Equal(t, "2", meta.YearsExperience)
}

func TestExtract_SendsOnlyFirst5000Chars(t *testing.T) {
	stub := &llmtest.Stub{Text: `{}`}
	text := strings.Repeat("a", 5000) + strings.Repeat("Z", 100)
	_, ok := NewProfileService(stub, "m").Extract(context.Background(), text)
	require.True(t, ok)
	prompt := stub.Last().Parts[0].Text
	assert.Contains(t, prompt, strings.Repeat("a", 5000))
	assert.NotContains(t, prompt, "Z")
}

func TestExtract_FailuresYieldNothing(t *testing.T) {
	svc := NewProfileService(&llmtest.Stub{Err: errors.New("boom")}, "m")
	meta, ok := svc.Extract(context.Background(), "resume")
	assert.False(t, ok)
	assert.Equal(t, Metadata{}, meta)

	svc = NewProfileService(&llmtest.Stub{Text: "not json at all"}, "m")
	_, ok = svc.Extract(context.Background(), "resume")
	assert.False(t, ok)

	_, ok = NewProfileService(&llmtest.Stub{Text: "{}"}, "m").Extract(context.Background(), "   ")
	assert.False(t, ok)
}

func TestMetadataApplyTo_PreservesExistingFields(t *testing.T) {
	in := career.Defaults()
	in.City = "Chennai"
	in.YearsExperience = "3"

	Metadata{ExperienceLevel: career.LevelMidCareer}.ApplyTo(&in)
	assert.Equal(t, "Chennai", in.City)
	assert.Equal(t, "3", in.YearsExperience)
	assert.Equal(t, career.LevelMidCareer, in.ExperienceLevel)

	Metadata{City: "Hyderabad", YearsExperience: "4"}.ApplyTo(&in)
	assert.Equal(t, "Hyderabad", in.City)
	assert.Equal(t, "4", in.YearsExperience)
	assert.Equal(t, career.LevelMidCareer, in.ExperienceLevel)
}
