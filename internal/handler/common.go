package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BindJson 解析 JSON body，失敗時以 400 回應並帶上該操作的訊息
func BindJson(c *gin.Context, obj interface{}, message string) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": message,
			"error":   err.Error(),
		})
		return err
	}
	return nil
}

func errorBody(message string, err error) gin.H {
	return gin.H{
		"message": message,
		"error":   err.Error(),
	}
}
