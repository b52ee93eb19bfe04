package leave

import (
	"io"
	"time"
)

// ApplyLeaveRequest binds from multipart form fields or a JSON body.
type ApplyLeaveRequest struct {
	Reason       string `form:"reason" json:"reason"`
	EmployeeName string `form:"employee_name" json:"employee_name"`
}

type Attachment struct {
	Filename string
	Body     io.Reader
}

type ApplyLeaveResponse struct {
	Message        string  `json:"message"`
	LeaveID        uint64  `json:"leave_id"`
	AttachmentFile *string `json:"attachment_file,omitempty"`
}

type LeaveResponse struct {
	LeaveID        uint64     `json:"leave_id"`
	Reason         string     `json:"reason"`
	AttachmentFile *string    `json:"attachment_file"`
	EmployeeName   string     `json:"employee_name"`
	AppliedOn      *time.Time `json:"applied_on"`
}
