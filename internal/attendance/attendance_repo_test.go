package attendance_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/priyanshu-101/cb-app-user/internal/attendance"
	"github.com/priyanshu-101/cb-app-user/internal/shared/dbtest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestRepository_Create(t *testing.T) {
	db, mock := dbtest.NewMySQL(t)
	lat, lng := 12.97, 77.59

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO `mark_attendance` (`employee_name`,`employee_photo`,`attendance_date`,`attendance_time`,`location_latitude`,`location_longitude`,`city`) VALUES (?,?,?,?,?,?,?)")).
		WithArgs("Asha Rao", "data:image/jpeg;base64,AAAA", "2024-05-01", "09:15:00", lat, lng, "Bengaluru").
		WillReturnResult(sqlmock.NewResult(31, 1))

	row := &attendance.Attendance{
		EmployeeName:      "Asha Rao",
		EmployeePhoto:     "data:image/jpeg;base64,AAAA",
		AttendanceDate:    "2024-05-01",
		AttendanceTime:    "09:15:00",
		LocationLatitude:  &lat,
		LocationLongitude: &lng,
		City:              "Bengaluru",
	}
	assert.NoError(t, attendance.NewRepository(db).Create(context.Background(), row))
	assert.Equal(t, uint64(31), row.ID)
}

func TestRepository_FindByEmployeeName(t *testing.T) {
	query := regexp.QuoteMeta("SELECT * FROM `mark_attendance` WHERE employee_name = ?")

	t.Run("rows", func(t *testing.T) {
		db, mock := dbtest.NewMySQL(t)
		mock.ExpectQuery(query).
			WithArgs("Asha Rao").
			WillReturnRows(sqlmock.NewRows([]string{"id", "employee_name", "employee_photo", "attendance_date", "attendance_time", "location_latitude", "location_longitude", "city"}).
				AddRow(1, "Asha Rao", "data:,", "2024-05-01", "09:15:00", nil, nil, "Pune").
				AddRow(2, "Asha Rao", "data:,", "2024-05-02", "09:01:00", nil, nil, "Pune"))

		rows, err := attendance.NewRepository(db).FindByEmployeeName(context.Background(), "Asha Rao")
		assert.NoError(t, err)
		assert.Len(t, rows, 2)
		assert.Nil(t, rows[0].LocationLatitude)
		assert.Equal(t, "2024-05-02", rows[1].AttendanceDate)
	})

	t.Run("driver error", func(t *testing.T) {
		db, mock := dbtest.NewMySQL(t)
		mock.ExpectQuery(query).WithArgs("x").WillReturnError(errors.New("Unknown column 'employee_name'"))

		_, err := attendance.NewRepository(db).FindByEmployeeName(context.Background(), "x")
		assert.EqualError(t, err, "Unknown column 'employee_name'")
	})
}
