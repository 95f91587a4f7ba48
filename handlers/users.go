package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"annotation-tool/database"
)

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Store.ListExistingUsers()
	if err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GetActivity - последние события журнала.
func (h *Handler) GetActivity(c *gin.Context) {
	if h.Journal == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Activity journal disabled"})
		return
	}

	// Параметры запроса
	username := c.Query("username")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(database.DefaultLimit)))

	events, err := h.Journal.Recent(username, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}
