package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/proodentit/tolon-attendance/internal/domain/attendance"
	"github.com/proodentit/tolon-attendance/internal/handler/http/response"
	"github.com/proodentit/tolon-attendance/internal/pkg/validator"
)

type AttendanceHandler interface {
	Clock(w http.ResponseWriter, r *http.Request)
	ListForDate(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Clock implements AttendanceHandler.
func (h *attendanceHandlerImpl) Clock(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode clock request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance request", "action", req.Action, "subject", req.Identifier())

	result, err := h.attendanceService.Clock(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}

// ListForDate implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListForDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if _, ok := validator.IsValidDate(date); !ok {
		response.BadRequest(w, "date must be YYYY-MM-DD", nil)
		return
	}

	recs, err := h.attendanceService.ListForDate(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toAttendanceRows(recs))
}

type attendanceRow struct {
	Subject    string  `json:"subject"`
	Date       string  `json:"date"`
	TimeIn     *string `json:"time_in"`
	TimeOut    *string `json:"time_out"`
	Zone       string  `json:"zone"`
	Department string  `json:"department"`
}

// timePtrToString keeps nil nil, so an open day renders time_out as null.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

func toAttendanceRows(recs []attendance.Record) []attendanceRow {
	rows := make([]attendanceRow, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, attendanceRow{
			Subject:    rec.SubjectKey,
			Date:       rec.Date,
			TimeIn:     timePtrToString(rec.TimeIn),
			TimeOut:    timePtrToString(rec.TimeOut),
			Zone:       rec.Zone,
			Department: rec.Department,
		})
	}
	return rows
}
