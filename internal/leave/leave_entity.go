package leave

import "time"

// LeaveApplication references the employee by name, not id.
type LeaveApplication struct {
	LeaveID        uint64     `gorm:"column:leave_id;primaryKey;autoIncrement"`
	Reason         string     `gorm:"column:reason;type:text;not null"`
	AttachmentFile *string    `gorm:"column:attachment_file"`
	EmployeeName   string     `gorm:"column:employee_name;not null;index"`
	AppliedOn      *time.Time `gorm:"column:applied_on;->"`
}

func (LeaveApplication) TableName() string {
	return "leave_application"
}
