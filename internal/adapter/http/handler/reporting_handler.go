package handler

import (
	"math"
	"strconv"

	"custody-gateway/internal/adapter/http/dto"
	"custody-gateway/internal/core/domain"
	"custody-gateway/internal/core/ports"
	"custody-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// ReportingHandler handles transfer journal and statistics endpoints.
type ReportingHandler struct {
	reportingSvc ports.ReportingService
}

// NewReportingHandler creates a new ReportingHandler.
func NewReportingHandler(reportingSvc ports.ReportingService) *ReportingHandler {
	return &ReportingHandler{reportingSvc: reportingSvc}
}

// ListTransfers handles GET /api/v1/transfers.
func (h *ReportingHandler) ListTransfers(c *gin.Context) {
	principal, ok := callerAddress(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	params := ports.TransferListParams{
		Principal: principal,
		Page:      page,
		PageSize:  pageSize,
	}

	if d := c.Query("direction"); d != "" {
		direction := domain.TransferDirection(d)
		params.Direction = &direction
	}
	if k := c.Query("kind"); k != "" {
		kind := domain.AssetKind(k)
		params.Kind = &kind
	}
	if f := c.Query("from"); f != "" {
		if v, err := strconv.ParseInt(f, 10, 64); err == nil {
			params.From = &v
		}
	}
	if t := c.Query("to"); t != "" {
		if v, err := strconv.ParseInt(t, 10, 64); err == nil {
			params.To = &v
		}
	}

	transfers, total, err := h.reportingSvc.ListTransfers(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TransferResponse, 0, len(transfers))
	for i := range transfers {
		items = append(items, toTransferResponse(&transfers[i]))
	}

	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))

	response.OK(c, dto.TransferListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	})
}

// GetStats handles GET /api/v1/transfers/stats.
func (h *ReportingHandler) GetStats(c *gin.Context) {
	principal, ok := callerAddress(c)
	if !ok {
		return
	}

	stats, err := h.reportingSvc.GetTransferStats(c.Request.Context(), principal)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TransferStatsResponse{
		TotalTransfers:  stats.TotalTransfers,
		Deposits:        stats.Deposits,
		Withdrawals:     stats.Withdrawals,
		NativeDeposited: stats.NativeDeposited,
		NativeWithdrawn: stats.NativeWithdrawn,
	})
}
