package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"educrm/backend/pkg/response"
)

// MustGetID extracts a positive int64 id from the route parameter.
// On failure it writes a 400 response; the caller should return when ok=false.
func MustGetID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, 10002, "invalid id")
		return 0, false
	}
	return id, true
}
