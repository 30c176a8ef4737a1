package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Echo is the "validate shape, side effect, echo" handler shared by the
// services. It binds the JSON body into a T, runs effect (if any) on the
// bound value and answers 200 with ack(&body). Shape errors answer 400 before
// effect runs.
func Echo[T, R any](effect func(*gin.Context, *T), ack func(*T) R) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in T
		if err := c.ShouldBindJSON(&in); err != nil {
			BindError(c, err)
			return
		}
		if effect != nil {
			effect(c, &in)
		}
		c.JSON(http.StatusOK, ack(&in))
	}
}

// Message answers 200 with a fixed {"message": msg} body, ignoring the request.
func Message(msg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": msg})
	}
}
