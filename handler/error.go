package handler

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Aashish23092/tax-advisor/dto"
)

// sendError sends a structured error response
func sendError(c *gin.Context, statusCode int, code string, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   code,
		Message: errorMsg,
		Code:    statusCode,
	})
}
