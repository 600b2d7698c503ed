package services

import (
	"context"
	"fmt"
	"log"

	"github.com/rupesh9698/Resume-Analyzer/internal/models"
)

type AnalyzerService interface {
	Analyze(ctx context.Context, req models.AnalysisRequest) *models.AnalysisResult
}

type analyzerService struct {
	gemini        GeminiService
	parser        ResponseParser
	promptBuilder *PromptBuilder
}

// NewAnalyzerService wires the analysis pipeline. A nil GeminiService is
// allowed: it marks a failed initialization (missing credential), and every
// analysis then short-circuits to the default result.
func NewAnalyzerService(gemini GeminiService) AnalyzerService {
	return &analyzerService{
		gemini:        gemini,
		parser:        NewResponseParser(),
		promptBuilder: NewPromptBuilder(),
	}
}

// Analyze implements AnalyzerService. It never returns an error: any
// failure (client missing, API error, unparseable reply) is absorbed into a
// well-formed default result so the caller has no failure-specific branches.
func (a *analyzerService) Analyze(ctx context.Context, req models.AnalysisRequest) *models.AnalysisResult {
	if a.gemini == nil {
		return models.DefaultAnalysisResult("Gemini client not initialized.")
	}

	prompt := a.promptBuilder.BuildAnalysisPrompt(req.ResumeText, req.JobDescriptionText)

	response, err := a.gemini.GenerateText(ctx, prompt, 0.3)
	if err != nil {
		log.Printf("❌ Gemini request failed: %v\n", err)
		return models.DefaultAnalysisResult(fmt.Sprintf("Analysis failed: %v", err))
	}

	result, ok := a.parser.Parse(response)
	if !ok {
		log.Printf("❌ Failed to parse analysis response (%d characters)\n", len(response))
		return models.DefaultAnalysisResult("Analysis failed: invalid JSON returned by Gemini")
	}

	// The record always carries all five fields, lists included
	if result.ResumeSkills == nil {
		result.ResumeSkills = []string{}
	}
	if result.JobRequiredSkills == nil {
		result.JobRequiredSkills = []string{}
	}
	if result.MissingSkills == nil {
		result.MissingSkills = []string{}
	}

	return result
}
