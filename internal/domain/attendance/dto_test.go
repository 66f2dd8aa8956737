package attendance

import (
	"math"
	"testing"

	"github.com/proodentit/tolon-attendance/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClockRequest() ClockRequest {
	return ClockRequest{
		Action:      "clock in",
		SubjectName: "Abdulai Mohammed",
		Latitude:    9.4293,
		Longitude:   -1.0534,
		Timestamp:   "2025-03-10T08:02:00Z",
	}
}

func TestClockRequest_Validate(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(*ClockRequest)
		wantField string
	}{
		{"valid", func(r *ClockRequest) {}, ""},
		{"subject id instead of name", func(r *ClockRequest) {
			r.SubjectName = ""
			r.SubjectID = "TLN-001"
		}, ""},
		{"image instead of identifier", func(r *ClockRequest) {
			r.SubjectName = ""
			r.Image = "aGVsbG8="
		}, ""},
		{"unknown action", func(r *ClockRequest) { r.Action = "lunch break" }, "action"},
		{"missing action", func(r *ClockRequest) { r.Action = "" }, "action"},
		{"no identifier at all", func(r *ClockRequest) { r.SubjectName = "" }, "subjectId"},
		{"latitude out of range", func(r *ClockRequest) { r.Latitude = 91 }, "latitude"},
		{"latitude NaN", func(r *ClockRequest) { r.Latitude = math.NaN() }, "latitude"},
		{"longitude out of range", func(r *ClockRequest) { r.Longitude = -181 }, "longitude"},
		{"missing timestamp", func(r *ClockRequest) { r.Timestamp = "" }, "timestamp"},
		{"non-RFC3339 timestamp", func(r *ClockRequest) { r.Timestamp = "10/03/2025 08:02" }, "timestamp"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := validClockRequest()
			c.mutate(&req)

			err := req.Validate()
			if c.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), c.wantField)
		})
	}
}

func TestClockRequest_Identifier(t *testing.T) {
	req := validClockRequest()
	assert.Equal(t, "Abdulai Mohammed", req.Identifier())

	// subjectId wins when both are present.
	req.SubjectID = "TLN-001"
	assert.Equal(t, "TLN-001", req.Identifier())
}

func TestClockRequest_ParsedAction(t *testing.T) {
	req := validClockRequest()
	action, err := req.ParsedAction()
	require.NoError(t, err)
	assert.Equal(t, ActionClockIn, action)

	req.Action = "clock out"
	action, err = req.ParsedAction()
	require.NoError(t, err)
	assert.Equal(t, ActionClockOut, action)

	req.Action = "CLOCK IN"
	_, err = req.ParsedAction()
	assert.ErrorIs(t, err, ErrInvalidAction)
}
