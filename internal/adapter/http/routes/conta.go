package routes

import (
	"controle_financeiro/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathConta    = "/conta"
	PathDatabase = "/database"
)

func addContaRoutes(rg *gin.RouterGroup, contaHandler *handlers.ContaHandler) {
	conta := rg.Group(PathConta)
	{
		conta.POST("/inserir", contaHandler.InserirConta)
		conta.GET("/listar", contaHandler.ListarContas)
		conta.POST("/atualizar", contaHandler.AtualizarConta)
		conta.POST("/excluir", contaHandler.ExcluirConta)
	}

	database := rg.Group(PathDatabase)
	{
		database.DELETE("/reset", contaHandler.ResetDatabase)
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", handlers.Ping)
}
