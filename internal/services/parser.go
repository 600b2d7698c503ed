package services

import (
	"encoding/json"
	"strings"

	"github.com/rupesh9698/Resume-Analyzer/internal/models"
)

type ResponseParser interface {
	Parse(text string) (*models.AnalysisResult, bool)
}

type responseParser struct{}

func NewResponseParser() ResponseParser {
	return &responseParser{}
}

// Parse interprets an LLM reply as an AnalysisResult. It first attempts a
// strict parse of the whole string, then falls back to the substring between
// the first '{' and the last '}' — the model sometimes wraps the JSON in
// prose or markdown fences despite instructions not to. Returns false when
// no JSON object can be recovered; it never returns an error.
//
// The fallback assumes a single top-level object: stray braces in
// surrounding prose will mis-extract.
func (p *responseParser) Parse(text string) (*models.AnalysisResult, bool) {
	if strings.TrimSpace(text) == "" {
		return nil, false
	}

	if result, ok := tryDecode(text); ok {
		return result, true
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end > start {
		return tryDecode(text[start : end+1])
	}

	return nil, false
}

func tryDecode(text string) (*models.AnalysisResult, bool) {
	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, false
	}
	return &result, true
}
