package salary

import "github.com/shopspring/decimal"

type SalaryResponse struct {
	ID                 uint64          `json:"id"`
	EmployeeName       string          `json:"employee_name"`
	TotalSalary        decimal.Decimal `json:"total_salary"`
	AdvanceTakenAmount decimal.Decimal `json:"advance_taken_amount"`
	AdvanceTakenDate   *string         `json:"advance_taken_date"`
	BonusAmount        decimal.Decimal `json:"bonus_amount"`
	BonusDate          *string         `json:"bonus_date"`
	FinalSalary        decimal.Decimal `json:"final_salary"`
}
