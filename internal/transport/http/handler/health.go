package handler

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"docuchat/internal/bootstrap"
)

type HealthHandler struct {
	app *bootstrap.App
}

type dependencyStatus struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

func NewHealthHandler(app *bootstrap.App) *HealthHandler {
	return &HealthHandler{app: app}
}

func (h *HealthHandler) Check(c *gin.Context) {
	uploadStatus := checkDir(h.app.Config.Storage.UploadDir)
	outputStatus := checkDir(h.app.Config.Storage.OutputDir)

	allOK := uploadStatus.OK && outputStatus.OK
	statusCode := http.StatusOK
	if !allOK {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, gin.H{
		"app":        h.app.Config.App.Name,
		"env":        h.app.Config.App.Env,
		"uptime_sec": int(time.Since(h.app.StartedAt).Seconds()),
		"documents":  h.app.Store.Count(),
		"dependencies": gin.H{
			"upload_dir": uploadStatus,
			"output_dir": outputStatus,
		},
	})
}

func checkDir(dir string) dependencyStatus {
	info, err := os.Stat(dir)
	if err != nil {
		return dependencyStatus{OK: false, Message: err.Error()}
	}
	if !info.IsDir() {
		return dependencyStatus{OK: false, Message: "not a directory"}
	}
	return dependencyStatus{OK: true}
}
