package handlers

import (
	"fmt"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/rupesh9698/Resume-Analyzer/internal/models"
	"github.com/rupesh9698/Resume-Analyzer/internal/services"
)

type AnalyzeHandler struct {
	extractor   services.ExtractorService
	analyzer    services.AnalyzerService
	maxFileSize int64
}

func NewAnalyzeHandler(
	extractor services.ExtractorService,
	analyzer services.AnalyzerService,
	maxFileSize int64,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		extractor:   extractor,
		analyzer:    analyzer,
		maxFileSize: maxFileSize,
	}
}

// HandleAnalyze handles POST /analyze: one resume file plus a pasted job
// description in, one AnalysisResult out. Nothing is stored.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	resumeFile, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Upload a resume (PDF or DOCX) and paste a job description to begin.",
		})
	}

	jobDescription := services.CleanText(c.FormValue("job_description"))
	if jobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_description is required",
		})
	}

	if resumeFile.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	src, err := resumeFile.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("failed to read uploaded file: %w", err)
	}

	// Extraction failures are deliberately not absorbed here: a corrupt or
	// unsupported document surfaces through the app error handler.
	resumeText, err := h.extractor.ExtractText(resumeFile.Filename, data)
	if err != nil {
		return err
	}

	analysisID := uuid.New()
	log.Printf("🔄 Analyzing resume %s (%s, %d bytes)\n", analysisID, resumeFile.Filename, resumeFile.Size)

	result := h.analyzer.Analyze(c.Context(), models.AnalysisRequest{
		ResumeText:         services.CleanText(resumeText),
		JobDescriptionText: jobDescription,
	})

	log.Printf("✅ Analysis %s completed with match score %d\n", analysisID, result.MatchScore)

	return c.JSON(models.AnalyzeResponse{
		ID:     analysisID.String(),
		Result: result,
	})
}
