package controllers

import (
	"net/http"
	"strconv"

	"horizon-hotel-backend/services"
	"horizon-hotel-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	ReportSvc *services.ReportService
	AuditSvc  *services.AuditService
}

func NewReportController(reportSvc *services.ReportService, auditSvc *services.AuditService) *ReportController {
	return &ReportController{ReportSvc: reportSvc, AuditSvc: auditSvc}
}

// GetOccupancyReport (GET /api/reports/occupancy?from=&to=)
func (ctrl *ReportController) GetOccupancyReport(c *gin.Context) {
	from, err := utils.ParseDay(c.Query("from"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid from date, expected yyyy-mm-dd")
		return
	}
	to, err := utils.ParseDay(c.Query("to"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid to date, expected yyyy-mm-dd")
		return
	}

	report, err := ctrl.ReportSvc.Occupancy(from, to)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, report)
}

// GetRevenueReport (GET /api/reports/revenue?from=&to=)
func (ctrl *ReportController) GetRevenueReport(c *gin.Context) {
	from, err := utils.ParseDay(c.Query("from"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid from date, expected yyyy-mm-dd")
		return
	}
	to, err := utils.ParseDay(c.Query("to"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid to date, expected yyyy-mm-dd")
		return
	}

	summary, err := ctrl.ReportSvc.Revenue(from, to)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, summary)
}

// GetAuditTrail (GET /api/reports/audit?entity=&entity_id=&limit=)
func (ctrl *ReportController) GetAuditTrail(c *gin.Context) {
	entity := c.Query("entity")
	if entity == "" {
		utils.JSONError(c, http.StatusBadRequest, "entity required")
		return
	}
	entityID, err := strconv.ParseUint(c.Query("entity_id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "entity_id required")
		return
	}
	limit := 0
	if v, convErr := strconv.Atoi(c.Query("limit")); convErr == nil {
		limit = v
	}

	entries, err := ctrl.AuditSvc.List(entity, uint(entityID), limit)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, entries)
}
