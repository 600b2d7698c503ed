package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildAnalysisPrompt creates the single-turn prompt comparing a resume
// against a job description. Both texts are embedded verbatim.
func (pb *PromptBuilder) BuildAnalysisPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`You are an ATS resume analyzer.

STRICT RULES:
- Respond with ONLY valid JSON
- No markdown
- No explanations

JSON FORMAT:
{
  "match_score": number,
  "resume_skills": [],
  "job_required_skills": [],
  "missing_skills": [],
  "suggestions": ""
}

RESUME:
"""%s"""

JOB DESCRIPTION:
"""%s"""`, resumeText, jobDescription)
}
