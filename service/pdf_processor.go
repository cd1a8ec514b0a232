package service

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFProcessor extracts the text layer of a PDF document. Scanned
// (image-only) PDFs are not supported; they surface as empty text.
type PDFProcessor interface {
	ExtractText(pdfData []byte) (string, error)
}

type pdfProcessor struct {
	conf *model.Configuration
}

func NewPDFProcessor() PDFProcessor {
	return &pdfProcessor{conf: model.NewDefaultConfiguration()}
}

func (p *pdfProcessor) ExtractText(pdfData []byte) (string, error) {
	// Structural sanity check before text extraction. Catches truncated
	// uploads and non-PDF payloads with a .pdf extension.
	pageCount, err := api.PageCount(bytes.NewReader(pdfData), p.conf)
	if err != nil {
		return "", fmt.Errorf("invalid PDF document: %w", err)
	}
	if pageCount == 0 {
		return "", fmt.Errorf("PDF document has no pages")
	}

	r, err := pdf.NewReader(bytes.NewReader(pdfData), int64(len(pdfData)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder bytes.Buffer
	for pageIndex := 1; pageIndex <= r.NumPage(); pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		rows, _ := page.GetTextByRow()
		for _, row := range rows {
			for i, word := range row.Content {
				if i > 0 {
					textBuilder.WriteString(" ")
				}
				textBuilder.WriteString(word.S)
			}
			textBuilder.WriteString("\n")
		}
	}

	return textBuilder.String(), nil
}
