package attendance

type Attendance struct {
	ID                uint64   `gorm:"column:id;primaryKey;autoIncrement"`
	EmployeeName      string   `gorm:"column:employee_name"`
	EmployeePhoto     string   `gorm:"column:employee_photo;type:longtext"`
	AttendanceDate    string   `gorm:"column:attendance_date"`
	AttendanceTime    string   `gorm:"column:attendance_time"`
	LocationLatitude  *float64 `gorm:"column:location_latitude"`
	LocationLongitude *float64 `gorm:"column:location_longitude"`
	City              string   `gorm:"column:city"`
}

func (Attendance) TableName() string {
	return "mark_attendance"
}
