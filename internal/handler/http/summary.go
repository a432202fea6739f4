package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cxops-br/presence-insights-go/internal/domain/attendance"
	"github.com/cxops-br/presence-insights-go/internal/handler/http/response"
)

type SummaryHandler interface {
	GetSummaries(w http.ResponseWriter, r *http.Request)
	PreviewSummaries(w http.ResponseWriter, r *http.Request)
	GetCurrentStatus(w http.ResponseWriter, r *http.Request)
	ListAttendants(w http.ResponseWriter, r *http.Request)
}

type summaryHandlerImpl struct {
	summaryService attendance.SummaryService
}

func NewSummaryHandler(summaryService attendance.SummaryService) SummaryHandler {
	return &summaryHandlerImpl{
		summaryService: summaryService,
	}
}

func rangeFilterFromQuery(r *http.Request) attendance.RangeFilter {
	return attendance.RangeFilter{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
		Name:      r.URL.Query().Get("name"),
	}
}

// GetSummaries implements SummaryHandler.
func (h *summaryHandlerImpl) GetSummaries(w http.ResponseWriter, r *http.Request) {
	filter := rangeFilterFromQuery(r)

	result, err := h.summaryService.GetSummaries(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// PreviewSummaries implements SummaryHandler.
func (h *summaryHandlerImpl) PreviewSummaries(w http.ResponseWriter, r *http.Request) {
	var records []attendance.EventRecord
	if err := json.NewDecoder(r.Body).Decode(&records); err != nil {
		slog.Error("Failed to decode event records", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.summaryService.PreviewSummaries(r.Context(), records)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetCurrentStatus implements SummaryHandler.
func (h *summaryHandlerImpl) GetCurrentStatus(w http.ResponseWriter, r *http.Request) {
	result, err := h.summaryService.GetCurrentStatus(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListAttendants implements SummaryHandler.
func (h *summaryHandlerImpl) ListAttendants(w http.ResponseWriter, r *http.Request) {
	filter := rangeFilterFromQuery(r)
	filter.Name = ""

	result, err := h.summaryService.ListAttendants(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
