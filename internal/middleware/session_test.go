package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/middleware"
	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/session"
)

func openMockPool(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return gdb, mock
}

func expectSessionSettings(mock sqlmock.Sqlmock) {
	mock.ExpectExec("SET SESSION sql_mode = 'TRADITIONAL'").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("SET time_zone = '-8:00'").
		WillReturnResult(sqlmock.NewResult(0, 0))
}

func TestDBSession_AppliesSettingsAndReleases(t *testing.T) {
	gin.SetMode(gin.TestMode)
	pool, mock := openMockPool(t)
	sqlDB, err := pool.DB()
	require.NoError(t, err)

	expectSessionSettings(mock)
	mock.ExpectQuery("SELECT 1").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	var sawScoped bool
	router := gin.New()
	router.GET("/x", middleware.DBSession(pool, time.Second), func(c *gin.Context) {
		scoped, ok := session.FromContext(c.Request.Context())
		sawScoped = ok
		if ok {
			// Prove the scoped handle runs on the dedicated connection.
			var n int
			require.NoError(t, scoped.Raw("SELECT 1").Scan(&n).Error)
		}
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/x", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, sawScoped, "handler should see the request-scoped DB")
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, 0, sqlDB.Stats().InUse, "connection must be released after the request")
}

func TestDBSession_ReleasesOnAbortedRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	pool, mock := openMockPool(t)
	sqlDB, err := pool.DB()
	require.NoError(t, err)

	expectSessionSettings(mock)

	var reached bool
	router := gin.New()
	reject := func(c *gin.Context) {
		// Stands in for the auth gate rejecting the request.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
		c.Abort()
	}
	router.GET("/x", middleware.DBSession(pool, time.Second), reject, func(c *gin.Context) {
		reached = true
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/x", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached, "handler must not run after the rejection")
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, 0, sqlDB.Stats().InUse, "connection must be released on the rejection path")
}

func TestDBSession_ReleasesOnPanic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	pool, mock := openMockPool(t)
	sqlDB, err := pool.DB()
	require.NoError(t, err)

	expectSessionSettings(mock)

	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/x", middleware.DBSession(pool, time.Second), func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/x", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, 0, sqlDB.Stats().InUse, "connection must be released when the handler panics")
}

func TestDBSession_PoolExhaustion(t *testing.T) {
	gin.SetMode(gin.TestMode)
	pool, _ := openMockPool(t)
	sqlDB, err := pool.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	// Hold the only connection so acquisition has to time out.
	held, err := sqlDB.Conn(context.Background())
	require.NoError(t, err)
	defer held.Close()

	var reached bool
	router := gin.New()
	router.GET("/x", middleware.DBSession(pool, 50*time.Millisecond), func(c *gin.Context) {
		reached = true
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/x", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.False(t, reached, "handler must not run without a connection")
}
