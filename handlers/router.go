package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// NewRouter собирает движок gin со всеми маршрутами.
func NewRouter(h *Handler, staticDir, indexFile string) *gin.Engine {
	r := gin.Default()
	r.Use(CORS())

	// API маршруты
	api := r.Group("/api")
	{
		api.GET("/template", h.GetTemplate)
		api.GET("/annotations", h.GetAnnotations)
		api.GET("/check-user", h.CheckUser)
		api.GET("/list-users", h.ListUsers)
		api.GET("/activity", h.GetActivity)
		api.POST("/save", h.SaveAnnotations)
		api.POST("/init-user", h.InitUser)
	}

	// Страница разметки и остальные файлы из staticDir по корневому пути
	if staticDir != "" {
		r.StaticFile("/", filepath.Join(staticDir, indexFile))
		r.NoRoute(serveStatic(staticDir))
	}

	return r
}

// serveStatic отдаёт обычные файлы из dir; каталоги не листаются.
func serveStatic(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
			return
		}

		name := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+c.Request.URL.Path)))
		info, err := os.Stat(name)
		if err != nil || !info.Mode().IsRegular() {
			c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
			return
		}
		c.File(name)
	}
}
