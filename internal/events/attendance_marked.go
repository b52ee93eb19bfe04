package events

import "time"

const AttendanceMarkedTopic = "cb.attendance.marked.v1"

type AttendanceMarkedEvent struct {
	EventType      string    `json:"event_type"`
	AttendanceID   uint64    `json:"attendance_id"`
	EmployeeID     string    `json:"employee_id"`
	EmployeeName   string    `json:"employee_name"`
	City           string    `json:"city"`
	AttendanceDate string    `json:"attendance_date"`
	AttendanceTime string    `json:"attendance_time"`
	OccurredAt     time.Time `json:"occurred_at"`
}
