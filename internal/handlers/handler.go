package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"clinic-backend/pkg/apperr"
	"clinic-backend/pkg/utils"
)

// respondError memetakan error workflow ke status + pesan untuk client.
// Detail aslinya cuma masuk log server, tidak pernah bocor keluar.
func respondError(c *gin.Context, err error) {
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	utils.APIResponse(c, apperr.StatusCode(err), false, apperr.Message(err), nil)
}
