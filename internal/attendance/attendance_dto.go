package attendance

import (
	"time"

	"github.com/priyanshu-101/cb-app-user/internal/leave"
)

const (
	StatusPresent = "Present"
	StatusOnLeave = "On Leave"
)

type MarkAttendanceRequest struct {
	EmployeeName      string   `json:"employee_name"`
	EmployeePhoto     string   `json:"employee_photo"`
	AttendanceDate    string   `json:"attendance_date"`
	AttendanceTime    string   `json:"attendance_time"`
	LocationLatitude  *float64 `json:"location_latitude"`
	LocationLongitude *float64 `json:"location_longitude"`
	City              string   `json:"city"`
}

type MarkAttendanceResponse struct {
	Message string `json:"message"`
	ID      uint64 `json:"id"`
}

type AttendanceResponse struct {
	ID                uint64   `json:"id"`
	EmployeeName      string   `json:"employee_name"`
	EmployeePhoto     string   `json:"employee_photo"`
	AttendanceDate    string   `json:"attendance_date"`
	AttendanceTime    string   `json:"attendance_time"`
	LocationLatitude  *float64 `json:"location_latitude"`
	LocationLongitude *float64 `json:"location_longitude"`
	City              string   `json:"city"`
}

// ViewResult holds the rows for one status. Only the slice matching Status
// is populated.
type ViewResult struct {
	Status     string
	Attendance []AttendanceResponse
	Leaves     []leave.LeaveResponse
}

// Rows is the JSON payload for the status.
func (v ViewResult) Rows() any {
	if v.Status == StatusOnLeave {
		return v.Leaves
	}
	return v.Attendance
}

func (v ViewResult) Len() int {
	if v.Status == StatusOnLeave {
		return len(v.Leaves)
	}
	return len(v.Attendance)
}

func MapToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:                a.ID,
		EmployeeName:      a.EmployeeName,
		EmployeePhoto:     a.EmployeePhoto,
		AttendanceDate:    dateOnly(a.AttendanceDate),
		AttendanceTime:    a.AttendanceTime,
		LocationLatitude:  a.LocationLatitude,
		LocationLongitude: a.LocationLongitude,
		City:              a.City,
	}
}

// dateOnly trims a DATE column scanned as a timestamp back to YYYY-MM-DD.
func dateOnly(s string) string {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.Format(time.DateOnly)
	}
	return s
}
