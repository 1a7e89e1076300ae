package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorHandler recovers from panics and converts any errors attached to the
// context into a JSON error body, so handlers can `c.Error(err)` and return.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("Error: %v", r)
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
			}
		}()

		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			status := c.Writer.Status()
			if status < 400 {
				status = http.StatusInternalServerError
			}
			log.Printf("Error: %v", c.Errors.Last().Err)
			c.JSON(status, ErrorResponse{Error: c.Errors.Last().Error()})
		}
	}
}
