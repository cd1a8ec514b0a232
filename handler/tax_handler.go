package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aashish23092/tax-advisor/dto"
	"github.com/Aashish23092/tax-advisor/service"
)

type TaxHandler struct {
	calculator    *service.TaxCalculator
	advisor       *service.AIAdvisor
	chatAdvisor   *service.ChatAdvisor
	financialYear string
}

func NewTaxHandler(calculator *service.TaxCalculator, advisor *service.AIAdvisor, chatAdvisor *service.ChatAdvisor, financialYear string) *TaxHandler {
	return &TaxHandler{
		calculator:    calculator,
		advisor:       advisor,
		chatAdvisor:   chatAdvisor,
		financialYear: financialYear,
	}
}

// CalculateTax handles POST /tax/calculate: computes both regimes, attaches
// advisor insights and opens a chat session for follow-up questions.
func (h *TaxHandler) CalculateTax(c *gin.Context) {
	log.Println("Received tax calculation request")

	var req dto.TaxCalculationRequest
	if err := c.ShouldBind(&req); err != nil {
		sendError(c, http.StatusBadRequest, "CALCULATION_FAILED", "Invalid calculation input", err)
		return
	}

	slip := req.ToSalarySlipData()
	profile := req.ToUserTaxProfile()

	result := h.calculator.Calculate(slip, profile)
	insights := h.advisor.GenerateTaxSuggestions(slip, profile, result)
	sessionID := h.chatAdvisor.CreateSession(slip, profile, result)

	log.Printf("Calculation done: recommended=%s savings=%.2f", result.RecommendedRegime, result.SavingsAmount)

	c.JSON(http.StatusOK, dto.TaxCalculationResponse{
		Result:        result,
		Insights:      insights,
		ChatSessionID: sessionID,
		FinancialYear: h.financialYear,
	})
}
