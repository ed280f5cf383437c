package handlers

import (
	"errors"
	"net/http"

	request "controle_financeiro/internal/adapter/http/dto/request"
	response "controle_financeiro/internal/adapter/http/dto/response"
	"controle_financeiro/internal/domain/entities"
	"controle_financeiro/internal/usecase"
	"controle_financeiro/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const contaHandlerComponent = "[conta][handler]"

const (
	MsgContaExcluida = "Conta excluída com sucesso"
	MsgBancoResetado = "Banco de dados resetado com sucesso"
	msgContaNotFound = "Conta não encontrada"
	msgErroInserir   = "Erro ao inserir conta"
	msgErroListar    = "Erro ao listar contas"
	msgErroAtualizar = "Erro ao atualizar conta"
	msgErroExcluir   = "Erro ao excluir conta"
	msgErroResetarBD = "Erro ao resetar o banco de dados"
)

// ContaHandler serves the /conta and /database routes.
//
// Failures never produce 400: a body that cannot be decoded is reported like
// any other failed operation of the endpoint.
type ContaHandler struct {
	usecase usecase.IContaUseCase
}

func NewContaHandler(uc usecase.IContaUseCase) *ContaHandler {
	return &ContaHandler{usecase: uc}
}

// InserirConta godoc
// @Summary      Insert a conta
// @Tags         conta
// @Accept       json
// @Produce      json
// @Param        conta  body      request.ContaRequest  true  "nome, valor, vencimento, status"
// @Success      201    {object}  response.ContaResponse
// @Failure      500    {object}  pkg.HTTPError
// @Router       /conta/inserir [post]
func (h *ContaHandler) InserirConta(c *gin.Context) {
	var payload request.ContaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.fail(c, mapContaError(err, msgErroInserir))
		return
	}

	conta, err := h.usecase.Insert(c.Request.Context(), payload.ToInput())
	if err != nil {
		h.fail(c, mapContaError(err, msgErroInserir))
		return
	}

	c.JSON(http.StatusCreated, response.FromConta(conta))
}

// ListarContas godoc
// @Summary      List every conta
// @Tags         conta
// @Produce      json
// @Success      200  {array}   response.ContaResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /conta/listar [get]
func (h *ContaHandler) ListarContas(c *gin.Context) {
	contas, err := h.usecase.List(c.Request.Context())
	if err != nil {
		h.fail(c, mapContaError(err, msgErroListar))
		return
	}

	c.JSON(http.StatusOK, response.FromContas(contas))
}

// AtualizarConta godoc
// @Summary      Overwrite a conta
// @Tags         conta
// @Accept       json
// @Produce      json
// @Param        conta  body      request.ContaRequest  true  "id plus the new nome, valor, vencimento, status"
// @Success      200    {object}  response.ContaResponse
// @Failure      404    {object}  pkg.HTTPError
// @Failure      500    {object}  pkg.HTTPError
// @Router       /conta/atualizar [post]
func (h *ContaHandler) AtualizarConta(c *gin.Context) {
	var payload request.ContaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.fail(c, mapContaError(err, msgErroAtualizar))
		return
	}

	conta, err := h.usecase.Update(c.Request.Context(), payload.ResolveID(), payload.ToInput())
	if err != nil {
		h.fail(c, mapContaError(err, msgErroAtualizar))
		return
	}

	c.JSON(http.StatusOK, response.FromConta(conta))
}

// ExcluirConta godoc
// @Summary      Delete a conta
// @Tags         conta
// @Accept       json
// @Produce      json
// @Param        conta  body      request.ContaRequest  true  "only id is read"
// @Success      200    {object}  response.MessageResponse
// @Failure      404    {object}  pkg.HTTPError
// @Failure      500    {object}  pkg.HTTPError
// @Router       /conta/excluir [post]
func (h *ContaHandler) ExcluirConta(c *gin.Context) {
	var payload request.ContaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.fail(c, mapContaError(err, msgErroExcluir))
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), payload.ResolveID()); err != nil {
		h.fail(c, mapContaError(err, msgErroExcluir))
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: MsgContaExcluida})
}

// ResetDatabase godoc
// @Summary      Drop and recreate the contas table
// @Tags         database
// @Produce      json
// @Success      200  {object}  response.MessageResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /database/reset [delete]
func (h *ContaHandler) ResetDatabase(c *gin.Context) {
	if err := h.usecase.Reset(c.Request.Context()); err != nil {
		h.fail(c, mapContaError(err, msgErroResetarBD))
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: MsgBancoResetado})
}

func (h *ContaHandler) fail(c *gin.Context, appErr *pkg.AppError) {
	ev := zerolog.Ctx(c.Request.Context()).Warn()
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		ev = zerolog.Ctx(c.Request.Context()).Error()
	}
	ev.Str("component", contaHandlerComponent).Str("code", appErr.Code).Err(appErr.Err).
		Str("route", c.FullPath()).Int("status", appErr.HTTPStatus).Msg(appErr.Message)

	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapContaError turns a failure into the endpoint's response. Only a missing
// row is distinguished; everything else is reported with failMsg.
func mapContaError(err error, failMsg string) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrContaNotFound):
		return pkg.NewDomainError("CONTA_NOT_FOUND", msgContaNotFound, err, http.StatusNotFound)
	case errors.Is(err, entities.ErrConstraintViolation):
		return pkg.NewDomainError("CONSTRAINT_VIOLATION", failMsg, err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", failMsg, err, http.StatusInternalServerError)
	}
}
