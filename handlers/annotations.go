package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"annotation-tool/models"
	"annotation-tool/store"
)

type SaveRequest struct {
	Username    string                       `json:"username"`
	Data        []models.Row                 `json:"data"`
	Annotations map[string]models.Annotation `json:"annotations"`
}

type InitRequest struct {
	Username string `json:"username"`
}

func (h *Handler) GetAnnotations(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		usernameRequired(c)
		return
	}

	result, err := h.Store.LoadUserAnnotations(username)
	if err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) CheckUser(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		usernameRequired(c)
		return
	}

	exists, err := h.Store.UserFileExists(username)
	if err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

func (h *Handler) SaveAnnotations(c *gin.Context) {
	var request SaveRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if request.Username == "" {
		usernameRequired(c)
		return
	}

	// Полная перезапись файла разметчика
	if err := h.Store.SaveUserAnnotations(request.Username, request.Data, request.Annotations); err != nil {
		h.storeError(c, err)
		return
	}

	progress, annotated := store.Progress(request.Username, request.Data, request.Annotations)
	h.record(models.SaveEvent{
		Username:  request.Username,
		Action:    models.ActionSave,
		Rows:      progress.Total,
		Annotated: annotated,
		Completed: progress.Completed,
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Saved to %s", store.FileName(request.Username)),
	})
}

func (h *Handler) InitUser(c *gin.Context) {
	var request InitRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if request.Username == "" {
		usernameRequired(c)
		return
	}

	created, count, err := h.Store.InitUserFile(request.Username)
	if err != nil {
		h.storeError(c, err)
		return
	}

	fileName := store.FileName(request.Username)
	if !created {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"created": false,
			"message": fmt.Sprintf("File %s already exists", fileName),
		})
		return
	}

	h.record(models.SaveEvent{
		Username: request.Username,
		Action:   models.ActionInit,
		Rows:     count,
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"created": true,
		"message": fmt.Sprintf("Created %s", fileName),
	})
}
