package attendance

import (
	"math"
	"strings"
	"time"

	"github.com/proodentit/tolon-attendance/internal/pkg/validator"
)

// ClockRequest is the body of POST /api/attendance/web. Older clients send
// subjectName, newer ones subjectId; either identifies the subject and the
// directory resolves the alias. Clients may instead send the captured photo
// and let the server resolve the identity itself.
type ClockRequest struct {
	Action      string  `json:"action"`
	SubjectID   string  `json:"subjectId"`
	SubjectName string  `json:"subjectName"`
	Image       string  `json:"image"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Timestamp   string  `json:"timestamp"`
}

func (r *ClockRequest) Identifier() string {
	if !validator.IsEmpty(r.SubjectID) {
		return strings.TrimSpace(r.SubjectID)
	}
	return strings.TrimSpace(r.SubjectName)
}

func (r *ClockRequest) ParsedAction() (Action, error) {
	switch Action(r.Action) {
	case ActionClockIn:
		return ActionClockIn, nil
	case ActionClockOut:
		return ActionClockOut, nil
	default:
		return "", ErrInvalidAction
	}
}

func (r *ClockRequest) ParsedTimestamp() (time.Time, error) {
	return time.Parse(time.RFC3339, r.Timestamp)
}

func (r *ClockRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, err := r.ParsedAction(); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be \"clock in\" or \"clock out\"",
		})
	}

	if validator.IsEmpty(r.SubjectID) && validator.IsEmpty(r.SubjectName) && validator.IsEmpty(r.Image) {
		errs = append(errs, validator.ValidationError{
			Field:   "subjectId",
			Message: "subjectId, subjectName, or image is required",
		})
	}

	if r.Latitude < -90 || r.Latitude > 90 || math.IsNaN(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude < -180 || r.Longitude > 180 || math.IsNaN(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if validator.IsEmpty(r.Timestamp) {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp is required",
		})
	} else if _, err := r.ParsedTimestamp(); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp must be RFC3339",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClockResponse struct {
	Subject    string `json:"subject"`
	Action     Action `json:"action"`
	Zone       string `json:"zone"`
	Department string `json:"department"`
	Date       string `json:"date"`
	Message    string `json:"-"`
}
