package handlers

import "github.com/gin-gonic/gin"

// Envelope is the uniform reply shape on every json response.
type Envelope struct {
	Status   string      `json:"status"`
	Message  string      `json:"message"`
	Response interface{} `json:"response"`
}

func respond(c *gin.Context, code int, message string, payload interface{}) {
	c.JSON(code, Envelope{Status: "OK", Message: message, Response: payload})
}

// respondError never leaks internal detail; callers log the cause themselves.
func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, Envelope{Status: "Error", Message: message, Response: nil})
}
