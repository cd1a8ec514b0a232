package service

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"strings"

	"github.com/Aashish23092/tax-advisor/dto"
	"github.com/Aashish23092/tax-advisor/utils"
)

// SlipService turns an uploaded salary slip PDF into a structured record.
// The uploaded bytes are processed in memory; nothing is written to disk.
type SlipService struct {
	pdfProcessor PDFProcessor
}

func NewSlipService(pdfProcessor PDFProcessor) *SlipService {
	return &SlipService{pdfProcessor: pdfProcessor}
}

// ParseUpload extracts the text layer of the uploaded PDF and runs field
// extraction on it.
func (s *SlipService) ParseUpload(fileHeader *multipart.FileHeader) (dto.SalarySlipData, []string, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return dto.SalarySlipData{}, nil, fmt.Errorf("failed to open upload %s: %w", fileHeader.Filename, err)
	}
	defer f.Close()

	pdfData, err := io.ReadAll(f)
	if err != nil {
		return dto.SalarySlipData{}, nil, fmt.Errorf("failed to read upload %s: %w", fileHeader.Filename, err)
	}

	text, err := s.pdfProcessor.ExtractText(pdfData)
	if err != nil {
		return dto.SalarySlipData{}, nil, err
	}

	if strings.TrimSpace(text) == "" {
		log.Printf("No text layer in %s, likely a scanned PDF", fileHeader.Filename)
		return dto.SalarySlipData{}, nil, dto.ErrNoTextContent
	}

	return utils.ParseSalarySlip(text)
}
