package handler

import (
	"errors"
	"net/http"

	"github.com/P0n40/Shiftdailyreportapp/internal/logger"
	"github.com/P0n40/Shiftdailyreportapp/internal/model"
	"github.com/P0n40/Shiftdailyreportapp/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reports *service.ReportService
}

func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// GET /api/reports
func (h *ReportHandler) List(c *gin.Context) {
	reports, err := h.reports.List(c.Request.Context())
	if err != nil {
		logger.Error("report.list.failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

// GET /api/reports/:id
func (h *ReportHandler) Get(c *gin.Context) {
	r, err := h.reports.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}
	if err != nil {
		logger.Error("report.get.failed", "id", c.Param("id"), "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch report"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": r})
}

// POST /api/reports
func (h *ReportHandler) Create(c *gin.Context) {
	var draft model.Report
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	r, err := h.reports.Create(c.Request.Context(), draft)
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
		return
	}
	if err != nil {
		logger.Error("report.create.failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create report"})
		return
	}
	logger.Info("report.created", "id", r.ID, "date", r.Date, "location", r.Location)
	c.JSON(http.StatusOK, gin.H{"success": true, "report": r})
}

// PUT /api/reports/:id
func (h *ReportHandler) Update(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	id := c.Param("id")
	r, err := h.reports.Update(c.Request.Context(), id, patch)
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}
	if err != nil {
		logger.Error("report.update.failed", "id", id, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update report"})
		return
	}
	logger.Info("report.updated", "id", id)
	c.JSON(http.StatusOK, gin.H{"success": true, "report": r})
}

// DELETE /api/reports/:id
func (h *ReportHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.reports.Delete(c.Request.Context(), id); err != nil {
		logger.Error("report.delete.failed", "id", id, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete report"})
		return
	}
	logger.Info("report.deleted", "id", id)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /api/statistics
func (h *ReportHandler) Statistics(c *gin.Context) {
	reports, err := h.reports.List(c.Request.Context())
	if err != nil {
		logger.Error("report.stats.failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"statistics": service.ComputeStatistics(reports)})
}
