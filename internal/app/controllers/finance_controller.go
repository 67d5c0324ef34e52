package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/erasmusedu/erasmus-portal/internal/app/models/dto"
	"github.com/erasmusedu/erasmus-portal/internal/app/services"
	"github.com/erasmusedu/erasmus-portal/internal/middleware"
)

// FinanceController handles the append-only ledger
type FinanceController struct {
	financeService services.FinanceService
}

// NewFinanceController creates a new FinanceController
func NewFinanceController(financeService services.FinanceService) *FinanceController {
	return &FinanceController{
		financeService: financeService,
	}
}

// ListRecords returns the full ledger
// @Summary List financial records
// @Tags finance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.FinancialRecord} "Ledger"
// @Router /staff/finance [get]
func (c *FinanceController) ListRecords(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.financeService.ListRecords()))
}

// AppendRecord appends one ledger entry
// @Summary Append a financial record
// @Description The ledger is append-only; there is no update or delete
// @Tags finance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AppendRecordRequest true "Record fields"
// @Success 201 {object} dto.APIResponse{data=models.FinancialRecord} "Appended record"
// @Failure 400 {object} dto.ErrorResponse "Invalid record data"
// @Router /staff/finance [post]
func (c *FinanceController) AppendRecord(ctx *gin.Context) {
	var req dto.AppendRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid record data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	record, err := c.financeService.Append(req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(record))
}

// Summary returns the ledger aggregate
// @Summary Finance summary
// @Description Total income, total expense and the running balance
// @Tags finance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.FinanceSummary} "Summary"
// @Router /admin/finance/summary [get]
func (c *FinanceController) Summary(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.financeService.Summary()))
}
