package employee

type ProfileResponse struct {
	EmployeeName string `json:"employee_name"`
}

// EmployeeResponse is the full employee row minus the password column.
type EmployeeResponse struct {
	EmployeeID   uint64 `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	EmailAddress string `json:"email_address"`
}

func MapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:   e.EmployeeID,
		EmployeeName: e.EmployeeName,
		EmailAddress: e.EmailAddress,
	}
}
