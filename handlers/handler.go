package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/juju/errors"
	"go.uber.org/zap"

	"annotation-tool/database"
	"annotation-tool/models"
	"annotation-tool/store"
)

// Handler связывает HTTP с хранилищем. Journal может быть nil.
type Handler struct {
	Store   *store.Store
	Journal *database.Journal
	Logger  *zap.Logger
}

func New(s *store.Store, journal *database.Journal, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{Store: s, Journal: journal, Logger: logger}
}

func usernameRequired(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Username required"})
}

// storeError: ошибки валидации -> 400, всё остальное -> 500.
func (h *Handler) storeError(c *gin.Context, err error) {
	if errors.Is(err, errors.NotValid) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.Logger.Error("store operation failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func (h *Handler) record(event models.SaveEvent) {
	if h.Journal == nil {
		return
	}
	if err := h.Journal.Record(event); err != nil {
		h.Logger.Warn("journal record failed", zap.String("username", event.Username), zap.Error(err))
	}
}
