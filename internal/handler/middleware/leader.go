package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	LeaderHeader = "X-Leader-ID"
	leaderKey    = "leader_id"
)

// EntryLeader records which leader the request targets. An absent header
// leaves the id empty, which the coordinators resolve to the local leader.
func EntryLeader() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(leaderKey, strings.TrimSpace(c.GetHeader(LeaderHeader)))
		c.Next()
	}
}

func GetLeaderID(c *gin.Context) string {
	if v, exists := c.Get(leaderKey); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return strings.TrimSpace(c.GetHeader(LeaderHeader))
}
