package holiday_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/priyanshu-101/cb-app-user/internal/holiday"
	"github.com/priyanshu-101/cb-app-user/internal/shared/dbtest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

var listQuery = regexp.QuoteMeta("SELECT * FROM `holidays` ORDER BY holiday_date ASC")

func newRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	gin.SetMode(gin.TestMode)
	db, mock := dbtest.NewMySQL(t)
	r := gin.New()
	holiday.RegisterRoutes(r, holiday.NewHandler(holiday.NewService(holiday.NewRepository(db))))
	return r, mock
}

func TestHolidayList(t *testing.T) {
	t.Run("returns every holiday regardless of id", func(t *testing.T) {
		r, mock := newRouter(t)
		mock.ExpectQuery(listQuery).WillReturnRows(sqlmock.NewRows([]string{"id", "holiday_name", "holiday_date"}).
			AddRow(1, "Republic Day", time.Date(2024, 1, 26, 0, 0, 0, 0, time.UTC)).
			AddRow(2, "Holi", time.Date(2024, 3, 25, 0, 0, 0, 0, time.UTC)))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/HolidayList/anything", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var env struct {
			Data []holiday.HolidayResponse `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, []holiday.HolidayResponse{
			{ID: 1, HolidayName: "Republic Day", HolidayDate: "2024-01-26"},
			{ID: 2, HolidayName: "Holi", HolidayDate: "2024-03-25"},
		}, env.Data)
	})

	t.Run("storage error", func(t *testing.T) {
		r, mock := newRouter(t)
		mock.ExpectQuery(listQuery).WillReturnError(errors.New("Table 'cb_app.holidays' doesn't exist"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/HolidayList/42", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Table 'cb_app.holidays' doesn't exist")
	})
}
