package employee

// Employee rows are provisioned out of band. Password is stored in clear text
// and compared as such by the login endpoint.
type Employee struct {
	EmployeeID   uint64 `gorm:"column:employee_id;primaryKey"`
	EmployeeName string `gorm:"column:employee_name"`
	EmailAddress string `gorm:"column:email_address"`
	Password     string `gorm:"column:password"`
}

func (Employee) TableName() string {
	return "employee"
}
