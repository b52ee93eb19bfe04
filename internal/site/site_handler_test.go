package site_test

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/priyanshu-101/cb-app-user/internal/shared/dbtest"
	"github.com/priyanshu-101/cb-app-user/internal/site"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := dbtest.NewMySQL(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `sites`")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Site A"))

	r := gin.New()
	site.RegisterRoutes(r, site.NewHandler(site.NewService(site.NewRepository(db), nil, zap.NewNop())))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/Camera/42", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"data":[{"id":1,"name":"Site A"}],"meta":{"total":1}}`, w.Body.String())
}
