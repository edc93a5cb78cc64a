package middleware_requestid

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const Header = "X-Request-ID"

// New tags every request with an id, keeping a caller-provided one when set.
func New() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(Header)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Set(Header, id)
		ctx.Header(Header, id)
		ctx.Next()
	}
}
