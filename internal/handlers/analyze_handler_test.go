package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rupesh9698/Resume-Analyzer/internal/models"
)

type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) ExtractText(filename string, data []byte) (string, error) {
	return s.text, s.err
}

type stubAnalyzer struct {
	result *models.AnalysisResult

	gotResume string
	gotJD     string
}

func (s *stubAnalyzer) Analyze(ctx context.Context, req models.AnalysisRequest) *models.AnalysisResult {
	s.gotResume = req.ResumeText
	s.gotJD = req.JobDescriptionText
	return s.result
}

func newTestApp(extractor *stubExtractor, analyzer *stubAnalyzer) *fiber.App {
	app := fiber.New()
	handler := NewAnalyzeHandler(extractor, analyzer, 10485760)
	app.Post("/api/v1/analyze", handler.HandleAnalyze)
	return app
}

func multipartBody(t *testing.T, filename, fileContent, jobDescription string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if filename != "" {
		fw, err := writer.CreateFormFile("resume", filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte(fileContent))
		require.NoError(t, err)
	}
	if jobDescription != "" {
		require.NoError(t, writer.WriteField("job_description", jobDescription))
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestHandleAnalyzeMissingResume(t *testing.T) {
	app := newTestApp(&stubExtractor{}, &stubAnalyzer{})

	body, contentType := multipartBody(t, "", "", "a job description")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleAnalyzeBlankJobDescription(t *testing.T) {
	app := newTestApp(&stubExtractor{text: "resume text"}, &stubAnalyzer{})

	body, contentType := multipartBody(t, "resume.pdf", "%PDF-1.4", "   \n\t ")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleAnalyzeExtractionFailurePropagates(t *testing.T) {
	app := newTestApp(&stubExtractor{err: errors.New("failed to open PDF")}, &stubAnalyzer{})

	body, contentType := multipartBody(t, "resume.pdf", "garbage", "a job description")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestHandleAnalyzeEndToEnd(t *testing.T) {
	extractor := &stubExtractor{text: "  Python,\n SQL,\t Docker "}
	analyzer := &stubAnalyzer{result: &models.AnalysisResult{
		MatchScore:        67,
		ResumeSkills:      []string{"Python", "SQL", "Docker"},
		JobRequiredSkills: []string{"Python", "SQL", "Kubernetes"},
		MissingSkills:     []string{"Kubernetes"},
		Suggestions:       "Learn Kubernetes",
	}}
	app := newTestApp(extractor, analyzer)

	body, contentType := multipartBody(t, "resume.pdf", "%PDF-1.4", "Requires  Python, SQL,\nKubernetes")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var response models.AnalyzeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))

	// Both texts reach the analyzer normalized
	assert.Equal(t, "Python, SQL, Docker", analyzer.gotResume)
	assert.Equal(t, "Requires Python, SQL, Kubernetes", analyzer.gotJD)

	// The five result fields pass through unchanged
	_, err = uuid.Parse(response.ID)
	assert.NoError(t, err)
	require.NotNil(t, response.Result)
	assert.Equal(t, 67, response.Result.MatchScore)
	assert.Equal(t, []string{"Python", "SQL", "Docker"}, response.Result.ResumeSkills)
	assert.Equal(t, []string{"Python", "SQL", "Kubernetes"}, response.Result.JobRequiredSkills)
	assert.Equal(t, []string{"Kubernetes"}, response.Result.MissingSkills)
	assert.Equal(t, "Learn Kubernetes", response.Result.Suggestions)
}
