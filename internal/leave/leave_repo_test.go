package leave_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/priyanshu-101/cb-app-user/internal/leave"
	"github.com/priyanshu-101/cb-app-user/internal/shared/dbtest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	insert := regexp.QuoteMeta("INSERT INTO `leave_application` (`reason`,`attachment_file`,`employee_name`) VALUES (?,?,?)")

	t.Run("assigns the generated id", func(t *testing.T) {
		db, mock := dbtest.NewMySQL(t)
		path := "uploads/1717000000123-3b2f6c1e-8d4a-4f7e-9c21-5a0d7e9b4c10.pdf"
		mock.ExpectExec(insert).
			WithArgs("fever", path, "Asha Rao").
			WillReturnResult(sqlmock.NewResult(11, 1))

		row := &leave.LeaveApplication{Reason: "fever", AttachmentFile: &path, EmployeeName: "Asha Rao"}
		assert.NoError(t, leave.NewRepository(db).Create(ctx, row))
		assert.Equal(t, uint64(11), row.LeaveID)
	})

	t.Run("without attachment", func(t *testing.T) {
		db, mock := dbtest.NewMySQL(t)
		mock.ExpectExec(insert).
			WithArgs("travel", nil, "Ravi").
			WillReturnError(errors.New("Data too long for column 'reason'"))

		err := leave.NewRepository(db).Create(ctx, &leave.LeaveApplication{Reason: "travel", EmployeeName: "Ravi"})
		assert.EqualError(t, err, "Data too long for column 'reason'")
	})
}

func TestRepository_FindByEmployeeName(t *testing.T) {
	db, mock := dbtest.NewMySQL(t)
	applied := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `leave_application` WHERE employee_name = ?")).
		WithArgs("Asha Rao").
		WillReturnRows(sqlmock.NewRows([]string{"leave_id", "reason", "attachment_file", "employee_name", "applied_on"}).
			AddRow(11, "fever", nil, "Asha Rao", applied))

	rows, err := leave.NewRepository(db).FindByEmployeeName(context.Background(), "Asha Rao")
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Nil(t, rows[0].AttachmentFile)
	assert.Equal(t, applied, *rows[0].AppliedOn)
}
