package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Aashish23092/tax-advisor/config"
	"github.com/Aashish23092/tax-advisor/dto"
	"github.com/Aashish23092/tax-advisor/service"
)

type SlipHandler struct {
	slipService *service.SlipService
	maxFileSize int64
}

func NewSlipHandler(slipService *service.SlipService, maxFileSize int64) *SlipHandler {
	return &SlipHandler{
		slipService: slipService,
		maxFileSize: maxFileSize,
	}
}

// ParseSlip handles POST /slip/parse: accepts one salary slip PDF and
// returns the extracted record, confidence and missing fields.
func (h *SlipHandler) ParseSlip(c *gin.Context) {
	log.Println("Received salary slip parse request")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		sendError(c, http.StatusBadRequest, "PARSE_FAILED", "No file provided", err)
		return
	}

	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		sendError(c, http.StatusBadRequest, "PARSE_FAILED", "Only PDF files are allowed", nil)
		return
	}

	if fileHeader.Size > h.maxFileSize {
		sendError(c, http.StatusBadRequest, "PARSE_FAILED", "File size exceeds the maximum allowed size", nil)
		return
	}

	slipData, missing, err := h.slipService.ParseUpload(fileHeader)
	if err != nil {
		if errors.Is(err, dto.ErrNoTextContent) {
			sendError(c, http.StatusUnprocessableEntity, "NO_TEXT_CONTENT",
				"No text could be extracted from the PDF; scanned documents are not supported", err)
			return
		}
		sendError(c, http.StatusInternalServerError, "PARSE_FAILED", "Failed to parse salary slip", err)
		return
	}

	missingLabels := make([]string, 0, len(missing))
	for _, key := range missing {
		missingLabels = append(missingLabels, config.FieldLabel(key))
	}

	log.Printf("Parsed %s: %d/%d fields found, confidence %.2f%%",
		fileHeader.Filename,
		slipData.ParsingConfidence.FieldsFound,
		slipData.ParsingConfidence.FieldsTotal,
		slipData.ParsingConfidence.OverallConfidence)

	c.JSON(http.StatusOK, dto.SlipParseResponse{
		SalarySlip:    slipData,
		MissingFields: missing,
		MissingLabels: missingLabels,
		Confidence:    slipData.ParsingConfidence,
		ProcessedAt:   time.Now().Format(time.RFC3339),
	})
}
