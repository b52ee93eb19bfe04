package events

import "time"

const LeaveAppliedTopic = "cb.leave.applied.v1"

type LeaveAppliedEvent struct {
	EventType      string    `json:"event_type"`
	LeaveID        uint64    `json:"leave_id"`
	EmployeeID     string    `json:"employee_id"`
	EmployeeName   string    `json:"employee_name"`
	Reason         string    `json:"reason"`
	AttachmentFile *string   `json:"attachment_file,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}
