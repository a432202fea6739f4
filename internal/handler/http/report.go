package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cxops-br/presence-insights-go/internal/domain/attendance"
	"github.com/cxops-br/presence-insights-go/internal/domain/report"
	"github.com/cxops-br/presence-insights-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	GetShiftReport(w http.ResponseWriter, r *http.Request)
	PreviewShiftReport(w http.ResponseWriter, r *http.Request)
	GetDailyReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	shiftReportService report.ShiftReportService
	dailyReportService report.DailyReportService
}

func NewReportHandler(shiftReportService report.ShiftReportService, dailyReportService report.DailyReportService) ReportHandler {
	return &reportHandlerImpl{
		shiftReportService: shiftReportService,
		dailyReportService: dailyReportService,
	}
}

func reportRequestFromQuery(r *http.Request) report.AttendantReportRequest {
	return report.AttendantReportRequest{
		UserID:    chi.URLParam(r, "userID"),
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}
}

// GetShiftReport implements ReportHandler.
func (h *reportHandlerImpl) GetShiftReport(w http.ResponseWriter, r *http.Request) {
	req := reportRequestFromQuery(r)

	result, err := h.shiftReportService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// PreviewShiftReport implements ReportHandler.
func (h *reportHandlerImpl) PreviewShiftReport(w http.ResponseWriter, r *http.Request) {
	var records []attendance.EventRecord
	if err := json.NewDecoder(r.Body).Decode(&records); err != nil {
		slog.Error("Failed to decode event records", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.shiftReportService.Preview(r.Context(), records)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDailyReport implements ReportHandler.
func (h *reportHandlerImpl) GetDailyReport(w http.ResponseWriter, r *http.Request) {
	req := reportRequestFromQuery(r)

	result, err := h.dailyReportService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
