package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryDetail.ID is the employee id; there is one row per employee.
type SalaryDetail struct {
	ID                 uint64          `gorm:"column:id;primaryKey"`
	EmployeeName       string          `gorm:"column:employee_name"`
	TotalSalary        decimal.Decimal `gorm:"column:total_salary;type:decimal(12,2)"`
	AdvanceTakenAmount decimal.Decimal `gorm:"column:advance_taken_amount;type:decimal(12,2)"`
	AdvanceTakenDate   *time.Time      `gorm:"column:advance_taken_date;type:date"`
	BonusAmount        decimal.Decimal `gorm:"column:bonus_amount;type:decimal(12,2)"`
	BonusDate          *time.Time      `gorm:"column:bonus_date;type:date"`
	FinalSalary        decimal.Decimal `gorm:"column:final_salary;type:decimal(12,2)"`
}

func (SalaryDetail) TableName() string {
	return "salary_details"
}
