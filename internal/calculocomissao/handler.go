// internal/calculocomissao/handler.go
package calculocomissao

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/CacambaFacil/api-gestao/internal/faixacomissao"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// Handler gerencia rotas de cálculo de comissão
type Handler struct {
	Repo     *Repository
	Faixas   *faixacomissao.Repository
	Params   Parametros
	validate *validator.Validate
}

// NewHandler cria um novo Handler
func NewHandler(repo *Repository, faixas *faixacomissao.Repository, params Parametros) *Handler {
	return &Handler{Repo: repo, Faixas: faixas, Params: params, validate: validator.New()}
}

// Simular trata POST /calculos/simular
// Calcula o detalhamento sem persistir nada — a tela de gestão usa isto para
// pré-visualizar a comissão antes de gerar o pagamento.
func (h *Handler) Simular(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var dto SimularCalculoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		http.Error(w, "payload inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	tabela, err := h.Faixas.TabelaAtiva()
	if err != nil {
		http.Error(w, "nenhuma tabela de faixas ativa", http.StatusConflict)
		return
	}

	var calc CalculoComissao
	var avisos []string
	if dto.FaixaCodigo != "" {
		calc, err = CalcularPorCodigo(dto.ValorVendas, dto.Notas, dto.QtdIndicacoes, dto.FaixaCodigo, tabela.Faixas, h.Params)
	} else {
		calc, avisos, err = CalcularComTabela(dto.ValorVendas, dto.Notas, dto.QtdIndicacoes, tabela.Faixas, h.Params)
	}
	if err != nil {
		http.Error(w, err.Error(), statusDoErro(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(SimulacaoDTO{Calculo: calc, Avisos: avisos})
}

// ListByFaixa trata GET /calculos?faixa=SILVER
// Lista os cálculos feitos com um código de faixa, para auditar o impacto de
// uma faixa antes de publicar uma tabela nova.
func (h *Handler) ListByFaixa(w http.ResponseWriter, r *http.Request) {
	codigo := r.URL.Query().Get("faixa")
	if codigo == "" {
		http.Error(w, "parâmetro 'faixa' é obrigatório", http.StatusBadRequest)
		return
	}
	list, err := h.Repo.FindByFaixa(codigo)
	if err != nil {
		http.Error(w, "erro ao buscar cálculos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// Get trata GET /calculos/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do cálculo inválido", http.StatusBadRequest)
		return
	}
	calc, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "cálculo não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(calc)
}

// statusDoErro traduz o tipo do erro do núcleo de cálculo em status HTTP.
func statusDoErro(err error) int {
	var foraDoIntervalo *ErroNotaKPIForaDoIntervalo
	var negativo *ErroValorNegativo
	switch {
	case errors.Is(err, faixacomissao.ErrNenhumaFaixa):
		return http.StatusUnprocessableEntity
	case errors.Is(err, faixacomissao.ErrFaixaDesconhecida):
		return http.StatusUnprocessableEntity
	case errors.As(err, &foraDoIntervalo), errors.As(err, &negativo):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
