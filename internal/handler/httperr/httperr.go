package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the only error body the API emits: {"error": "<message>"}.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
}

// AbortWithError writes msg to the client and records err on the context as a
// public error so the request log keeps the cause.
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg}
	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
