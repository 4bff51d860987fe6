package utils

import (
	"github.com/gin-gonic/gin"
)

// Format response standar biar frontend enak bacanya.
// Status berisi "success" atau "fail" mengikuti kontrak API lama.
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"` // omitempty: kalau null, ga usah dimunculin
}

func APIResponse(c *gin.Context, code int, success bool, message string, data interface{}) {
	status := "success"
	if !success {
		status = "fail"
	}
	c.JSON(code, Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}
