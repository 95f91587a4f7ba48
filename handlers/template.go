package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetTemplate(c *gin.Context) {
	rows, count, err := h.Store.LoadTemplate()
	if err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rows, "count": count})
}
