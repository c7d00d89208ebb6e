package controllers

import (
	"fmt"
	"net/http"
	"time"

	"gearguard/internal/entities"
	"gearguard/internal/services"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// GetRequestStats serves the grouped maintenance report. With format=xlsx the
// same rows are streamed back as a spreadsheet instead of JSON.
func (ctrl *ReportController) GetRequestStats(c echo.Context) error {
	groupBy := c.QueryParam("groupBy")
	stats, err := ctrl.reportService.GetRequestStats(c.Request().Context(), groupBy)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if c.QueryParam("format") == "xlsx" {
		return ctrl.writeStatsWorkbook(c, groupBy, stats)
	}
	return utils.SuccessResponse(c, stats, "Report generated successfully", http.StatusOK)
}

func (ctrl *ReportController) GetSummary(c echo.Context) error {
	summary, err := ctrl.reportService.GetSummary(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, summary, "Summary generated successfully", http.StatusOK)
}

func (ctrl *ReportController) writeStatsWorkbook(c echo.Context, groupBy string, stats []entities.RequestGroupStats) error {
	file := excelize.NewFile()
	defer func() {
		if err := file.Close(); err != nil {
			ctrl.logger.Warn("failed to close workbook", zap.Error(err))
		}
	}()

	const sheet = "Requests"
	index, err := file.NewSheet(sheet)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	file.SetActiveSheet(index)
	_ = file.DeleteSheet("Sheet1")

	groupHeader := "Team"
	if groupBy == "category" {
		groupHeader = "Category"
	}
	headers := []string{groupHeader, "Total", "New", "Assigned", "In Progress", "Repaired", "Scrapped", "Corrective", "Preventive", "Predictive"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return utils.ErrorResponse(c, err, ctrl.logger)
		}
	}

	for rowIdx, row := range stats {
		values := []interface{}{
			row.GroupName, row.Total, row.New, row.Assigned, row.InProgress,
			row.Repaired, row.Scrapped, row.Corrective, row.Preventive, row.Predictive,
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return utils.ErrorResponse(c, err, ctrl.logger)
			}
		}
	}

	filename := fmt.Sprintf("maintenance-report-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)

	if err := file.Write(c.Response().Writer); err != nil {
		ctrl.logger.Error("failed to write workbook", zap.Error(err))
		return err
	}
	return nil
}
