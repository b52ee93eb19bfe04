package auth

import "github.com/priyanshu-101/cb-app-user/internal/employee"

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Success  bool                      `json:"success"`
	Employee employee.EmployeeResponse `json:"employee"`
}
