package services

import (
	"bytes"
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

type ExtractorService interface {
	ExtractText(filename string, data []byte) (string, error)
}

type extractorService struct{}

func NewExtractorService() ExtractorService {
	return &extractorService{}
}

// ExtractText implements ExtractorService. The format is decided by the
// uploaded file's extension; only PDF and DOCX are accepted.
func (e *extractorService) ExtractText(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".pdf":
		return e.extractPDF(data)
	case ".docx":
		return e.extractDOCX(data)
	default:
		return "", fmt.Errorf("unsupported file type: %s (only .pdf and .docx are accepted)", ext)
	}
}

func (e *extractorService) extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// A page with no extractable text contributes nothing
			continue
		}

		textBuilder.WriteString(text)
	}

	return textBuilder.String(), nil
}

func (e *extractorService) extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer doc.Close()

	return docxParagraphText(doc.Editable().GetContent()), nil
}

var (
	paragraphRegex = regexp.MustCompile(`(?s)<w:p[ >/].*?(</w:p>|/>)`)
	textRunRegex   = regexp.MustCompile(`(?s)<w:t[^>]*>(.*?)</w:t>`)
)

// docxParagraphText pulls the text runs out of WordprocessingML markup and
// joins each paragraph's text with a newline separator.
func docxParagraphText(content string) string {
	paragraphs := paragraphRegex.FindAllString(content, -1)

	var lines []string
	for _, para := range paragraphs {
		var lineBuilder strings.Builder
		for _, run := range textRunRegex.FindAllStringSubmatch(para, -1) {
			lineBuilder.WriteString(html.UnescapeString(run[1]))
		}
		lines = append(lines, lineBuilder.String())
	}

	return strings.Join(lines, "\n")
}
