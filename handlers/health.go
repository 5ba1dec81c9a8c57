package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smarthome/utils"
)

// HealthHandler handles GET /health, reporting the latest monitored snapshot.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()

	code := http.StatusOK
	state := "ok"
	if !status.Mongo {
		code = http.StatusServiceUnavailable
		state = "degraded"
	}

	c.JSON(code, gin.H{
		"status":  state,
		"message": "Smart Server is Running !",
		"health":  status,
	})
}
