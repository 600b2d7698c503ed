package models

// AnalysisRequest carries the two normalized texts the analyzer compares.
// Created per submission and discarded once the response is rendered.
type AnalysisRequest struct {
	ResumeText         string `json:"resume_text"`
	JobDescriptionText string `json:"job_description_text"`
}

// AnalysisResult is the structured comparison returned by the LLM. All five
// fields are always present, even when the analysis fails.
type AnalysisResult struct {
	MatchScore        int      `json:"match_score"`
	ResumeSkills      []string `json:"resume_skills"`
	JobRequiredSkills []string `json:"job_required_skills"`
	MissingSkills     []string `json:"missing_skills"`
	Suggestions       string   `json:"suggestions"`
}

// DefaultAnalysisResult returns the safe fallback record: score 0, empty
// skill lists, and an explanatory message in suggestions.
func DefaultAnalysisResult(suggestions string) *AnalysisResult {
	return &AnalysisResult{
		MatchScore:        0,
		ResumeSkills:      []string{},
		JobRequiredSkills: []string{},
		MissingSkills:     []string{},
		Suggestions:       suggestions,
	}
}

type AnalyzeResponse struct {
	ID     string          `json:"id"`
	Result *AnalysisResult `json:"result"`
}
