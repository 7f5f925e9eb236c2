package analysis

import (
	"fmt"
	"strings"

	"github.com/artem13815/careerlens/pkg/career"
)

const fence = "```"

// SystemPrompt is sent as the system instruction with every analysis request.
const SystemPrompt = `
**RESUME JOB SEARCH WITH MODERN FRONTEND DESIGN - SYSTEM PROMPT**

You are **ResumeJobSearch-India**, an AI assistant inside a modern, card-based web application for **Indian job seekers**.

The UI shows **compact job cards**, so your content within each card must be clean, structured, and short. However, you MUST generate the requested NUMBER of cards (quantity) specified in the user prompt.

---

## CORE JOB

1. **Understand the profile**
   - Read the resume text (or image description).
   - Identify skills, education, projects.
   - **Audit the Resume**: Evaluate ATS compatibility (0-100), formatting issues, content impact, and key strengths.

2. **Suggest realistic roles**
   - Propose job roles fitting the Indian market.
   - Estimate demand: "High" | "Medium" | "Low".

3. **Produce frontend-ready JSON**
   - Output a JSON object matching the schema below.

---

## INDIAN CONTEXT

- **Education**: 10th, 12th, B.Tech, B.Com, MBA, etc.
- **Roles**: IT, Data, Sales, Ops, Govt Prep.
- **Demand**: General trends up to 2024.

---

## OUTPUT FORMAT

` + fence + `json
{
  "summary_of_profile": "...",
  "resume_audit": {
    "ats_compatibility_score": 0,
    "formatting_issues": [ "Issue 1", "Issue 2" ],
    "content_improvements": [ "Tip 1", "Tip 2" ],
    "key_strengths": [ "Strength 1", "Strength 2" ]
  },
  "flashcards": [
    {
      "job_title": "...",
      "demand_level": "High | Medium | Low",
      "match_score": 0,
      "experience_target": "...",
      "why_it_matches": "Strictly 1-2 short sentences explaining the fit. Do not exceed 2 sentences.",
      "what_you_do_in_this_job": [ "...", "...", "..." ],
      "skills_you_already_have": [ "..." ],
      "skills_to_build_next": [ "..." ],
      "first_steps_to_get_started": [ "...", "...", "..." ],
      "estimated_salary_expectation": "...",
      "recommended_certifications": [ "..." ],
      "google_job_search_query": "...",
      "google_job_search_url": "...",
      "risk_or_caution_note": ""
    }
  ],
  "overall_advice": "...",
  "disclaimer": "..."
}
` + fence + `

## LOGIC
- **Relevance**: Match degree, skills.
- **Demand**: Mix High, Medium, and Low.
- **Career Switchers**: Suggest roles with transferable skills.
- **Deep Mode**: If requested, provide more nuanced, less obvious matches.
- **Resume Audit**: Be strict but helpful. ATS Score based on keyword density, structure clarity, and standard headers. Always find at least 2 strengths.
`

const (
	// MoreRolesInstruction asks for the extended 8-12 card list.
	MoreRolesInstruction = "STRICT REQUIREMENT: You MUST generate between 8 to 12 distinct job roles. Enable HIGH ACCURACY mode: Analyze the resume deeply for transferable skills and niche opportunities. Do not provide fewer than 8 roles."
	// StandardRolesInstruction asks for the default 5-7 card list.
	StandardRolesInstruction = "Generate a focused list of 5 to 7 distinct job roles. Use STANDARD ACCURACY: Prioritize the most direct and obvious matches for a quick overview."

	SearchInstruction = "IMPORTANT: Use Google Search to find REAL current job trends and demand in India before generating the JSON."

	DefaultCity  = "India (General)"
	DefaultYears = "Not specified"
)

// QuantityInstruction returns the card-count instruction for the request.
func QuantityInstruction(moreRoles bool) string {
	if moreRoles {
		return MoreRolesInstruction
	}
	return StandardRolesInstruction
}

func buildUserPrompt(in career.UserInput) string {
	var b strings.Builder
	b.WriteString("CANDIDATE PROFILE INPUT:\n")
	if strings.TrimSpace(in.ResumeText) != "" {
		b.WriteString("RESUME TEXT:\n")
		b.WriteString(in.ResumeText)
	} else {
		b.WriteString("RESUME TEXT: (See attached image)")
	}
	b.WriteString("\n\nPREFERENCES:\n")
	fmt.Fprintf(&b, "- City: %s\n", orDefault(in.City, DefaultCity))
	fmt.Fprintf(&b, "- Exp Level: %s\n", in.ExperienceLevel)
	fmt.Fprintf(&b, "- Years Exp: %s\n", orDefault(in.YearsExperience, DefaultYears))
	fmt.Fprintf(&b, "- Mode: %s\n", in.Mode)
	b.WriteString("\nTASK:\n")
	fmt.Fprintf(&b, "- %s\n", QuantityInstruction(in.MoreRoles))
	b.WriteString("- Analyze the profile and map to Indian market opportunities.\n")
	if in.Mode == career.ModeSearch {
		b.WriteString("\n")
		b.WriteString(SearchInstruction)
		b.WriteString("\n")
	}
	return b.String()
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return def
}
