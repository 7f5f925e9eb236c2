package coach

import "fmt"

func prepPrompt(role, resume string) string {
	return fmt.Sprintf(`You are an expert technical interviewer for the Indian job market.

Role: %s
Candidate Resume Snippet: %s...

Task: Generate 3 likely interview questions and identify 3 missing keywords for this candidate.

Output JSON format:
{
  "questions": [
    {
      "question": "The question text",
      "type": "Technical" or "Behavioral",
      "tip": "A short, specific tip on how THIS candidate should answer based on their resume (e.g. 'Mention your React project here')"
    }
  ],
  "missing_keywords": ["keyword1", "keyword2", "keyword3"]
}

Requirements:
- 2 Technical questions, 1 Behavioral/HR question.
- Keep it realistic for the role.
`, role, resume)
}

func letterPrompt(role, resume string) string {
	return fmt.Sprintf(`Act as a professional career coach for the Indian job market.
Write a tailored, professional cover letter for the role of %q.

Resume Context:
%s

Requirements:
1. Tone: Professional, enthusiastic, but grounded (not overly flowery).
2. Length: Concise (under 250 words).
3. Content: Highlight 2-3 specific skills/projects from the resume that match the %s role.
4. Format: Standard business letter body (Salutation -> Hook -> Skills -> Close).
5. Placeholders: Use [brackets] for things the user must fill (e.g., [Company Name], [Hiring Manager Name]).
6. Output: JUST the letter text, no markdown code blocks.
`, role, resume, role)
}
