package handlers

import (
	"net/http"

	response "controle_financeiro/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

// Ping godoc
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.MessageResponse
// @Router       /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, response.MessageResponse{Message: "pong"})
}
