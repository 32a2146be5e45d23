package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/pack-planner/internal/domain/model"
	"github.com/guttosm/pack-planner/internal/service"
)

// AuditLog records an operator action such as a registry mutation or a token issue.
func AuditLog(sink *AsyncLogger, c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if sink == nil {
		return
	}
	sink.Log(newAuditEntry(c, "info", actionType, message, fields))
}

// AuditLogError records a failed operator action.
func AuditLogError(sink *AsyncLogger, c *gin.Context, actionType, message string, err error, fields map[string]interface{}) {
	if sink == nil {
		return
	}
	entry := newAuditEntry(c, "error", actionType, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	sink.Log(entry)
}

func newAuditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:  time.Now().UTC(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		Operator:   service.OperatorFromContext(c.Request.Context()),
		ActionType: actionType,
	}
	if claims := GetClaims(c); claims != nil {
		entry.Operator = claims.Subject
	}
	return entry.WithFields(fields)
}
