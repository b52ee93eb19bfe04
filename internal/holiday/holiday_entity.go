package holiday

import "time"

type Holiday struct {
	ID          uint64    `gorm:"column:id;primaryKey"`
	HolidayName string    `gorm:"column:holiday_name"`
	HolidayDate time.Time `gorm:"column:holiday_date;type:date"`
}

func (Holiday) TableName() string {
	return "holidays"
}

type HolidayResponse struct {
	ID          uint64 `json:"id"`
	HolidayName string `json:"holiday_name"`
	HolidayDate string `json:"holiday_date"`
}
