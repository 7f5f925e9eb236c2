package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "sql power bi c++ c#", Normalize("  SQL / Power-BI,\tC++ (C#)  "))
	assert.Equal(t, "école", Normalize("ÉCOLE"))
	assert.Equal(t, "", Normalize(" -- "))
}

func TestContainsPhrase(t *testing.T) {
	text := Normalize("Built REST API services; wrote REST APIs docs")
	assert.True(t, ContainsPhrase(text, "rest api"))
	assert.False(t, ContainsPhrase("rest apis", "rest api"))
	assert.False(t, ContainsPhrase(text, ""))
}

func TestVariants(t *testing.T) {
	assert.Equal(t, []string{"powerbi", "power bi"}, Variants("PowerBI"))
	assert.Equal(t, []string{"tableau"}, Variants("Tableau"))
	assert.Empty(t, Variants("  "))
}

func TestMissing(t *testing.T) {
	resume := "Analyst with Advanced Excel, PostgreSQL and Power-BI dashboards."
	got := Missing(resume, []string{"MS Excel", "postgres", "Tableau", "tableau", " ", "Python", "power bi"})
	assert.Equal(t, []string{"Tableau", "Python"}, got)

	assert.Equal(t, []string{}, Missing(resume, nil))
	assert.True(t, Mentions(resume, "Microsoft Excel"))
	assert.False(t, Mentions(resume, "SQL"))
}

func TestMissing_IgnoresOrdinaryWords(t *testing.T) {
	resume := "Sales associate. Willing to go the extra mile; handled the rest of the store team. Designed UX surveys."
	keywords := []string{"Golang", "REST API", "UI"}
	assert.Equal(t, keywords, Missing(resume, keywords))

	assert.Equal(t, []string{"golang"}, Variants("Golang"))
	assert.Equal(t, []string{"ui"}, Variants("UI"))
	assert.True(t, Mentions("Built RESTful APIs in Go", "REST API"))
}
