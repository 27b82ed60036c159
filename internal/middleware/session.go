package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/session"
)

// Session-level settings applied once per acquired connection. TRADITIONAL
// mode enforces NOT NULL and date validity on writes.
const (
	sessionSQLMode  = "SET SESSION sql_mode = 'TRADITIONAL'"
	sessionTimeZone = "SET time_zone = '-8:00'"
)

// DBSession returns a middleware that dedicates one pooled connection to
// each request. The connection is acquired with a bounded wait, configured
// with the session settings above, exposed to downstream handlers through
// the request context, and released exactly once when the request finishes,
// whatever the exit path.
func DBSession(pool *gorm.DB, acquireTimeout time.Duration) gin.HandlerFunc {
	if pool == nil {
		panic("database pool cannot be nil for DBSession middleware")
	}
	if acquireTimeout <= 0 {
		acquireTimeout = 3 * time.Second
	}

	return func(c *gin.Context) {
		sqlDB, err := pool.DB()
		if err != nil {
			logrus.WithError(err).Error("DBSession: failed to access connection pool")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database unavailable"})
			c.Abort()
			return
		}

		acquireCtx, cancel := context.WithTimeout(c.Request.Context(), acquireTimeout)
		conn, err := sqlDB.Conn(acquireCtx)
		cancel()
		if err != nil {
			// Pool exhaustion is retryable for the caller, not fatal.
			logrus.WithError(err).Warn("DBSession: no connection available within the bounded wait")
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable, please retry"})
			c.Abort()
			return
		}
		// The single release point for every exit path, panics included.
		defer func() {
			if err := conn.Close(); err != nil {
				logrus.WithError(err).Warn("DBSession: failed to release connection")
			}
		}()

		ctx := c.Request.Context()
		if _, err := conn.ExecContext(ctx, sessionSQLMode); err != nil {
			logrus.WithError(err).Error("DBSession: failed to set session sql_mode")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database session setup failed"})
			c.Abort()
			return
		}
		if _, err := conn.ExecContext(ctx, sessionTimeZone); err != nil {
			logrus.WithError(err).Error("DBSession: failed to set session time zone")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database session setup failed"})
			c.Abort()
			return
		}

		// Bind a request-scoped gorm session to the dedicated connection, the
		// same way gorm's own DB.Connection does it.
		scoped := pool.Session(&gorm.Session{Context: ctx, NewDB: true})
		scoped.Statement.ConnPool = conn

		c.Request = c.Request.WithContext(session.NewContext(ctx, scoped))
		c.Next()
	}
}
