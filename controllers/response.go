package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"accountservice/apperror"
)

// respondError translates a domain error into its status code and a
// structured body. Anything that is not an AppError is a server fault.
func respondError(c *gin.Context, err error) {
	if appErr, ok := apperror.From(err); ok {
		c.JSON(appErr.Code, gin.H{
			"code":      appErr.Code,
			"message":   appErr.Message,
			"timestamp": time.Now(),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"code":      http.StatusInternalServerError,
		"message":   err.Error(),
		"timestamp": time.Now(),
	})
}

// respondBindError covers missing or malformed mandatory body fields.
func respondBindError(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{
		"code":      apperror.CodeBadRequest,
		"message":   apperror.MsgNoMandatoryField,
		"timestamp": time.Now(),
	})
}
