// internal/faixacomissao/handler.go
package faixacomissao

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Handler gerencia rotas das tabelas de faixas de comissão
type Handler struct {
	Repo     *Repository
	validate *validator.Validate
}

// NewHandler cria um novo Handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo, validate: validator.New()}
}

// Publicar trata POST /tabelas-faixas
// Publica uma versão nova da tabela inteira; faixas nunca são editadas em vigor.
func (h *Handler) Publicar(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var dto PublicarTabelaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		http.Error(w, "payload inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	zero := decimal.Zero
	cem := decimal.NewFromInt(100)
	for _, f := range dto.Faixas {
		if f.MetaMinima.LessThan(zero) {
			http.Error(w, "meta mínima não pode ser negativa", http.StatusBadRequest)
			return
		}
		if f.MetaMaxima != nil && f.MetaMaxima.LessThan(f.MetaMinima) {
			http.Error(w, "meta máxima menor que a meta mínima na faixa "+f.Codigo, http.StatusBadRequest)
			return
		}
		if f.TaxaBase.LessThan(zero) || f.TaxaBase.GreaterThan(cem) ||
			f.TaxaBonus.LessThan(zero) || f.TaxaBonus.GreaterThan(cem) {
			http.Error(w, "taxas devem estar entre 0 e 100 na faixa "+f.Codigo, http.StatusBadRequest)
			return
		}
		if !f.MultiplicadorKPI.IsPositive() {
			http.Error(w, "multiplicador de KPI deve ser positivo na faixa "+f.Codigo, http.StatusBadRequest)
			return
		}
	}

	tabela := TabelaFaixas{Descricao: dto.Descricao}
	for _, f := range dto.Faixas {
		tabela.Faixas = append(tabela.Faixas, FaixaComissao{
			Codigo:           f.Codigo,
			MetaMinima:       f.MetaMinima,
			MetaMaxima:       f.MetaMaxima,
			TaxaBase:         f.TaxaBase,
			TaxaBonus:        f.TaxaBonus,
			MultiplicadorKPI: f.MultiplicadorKPI,
		})
	}

	if err := h.Repo.CriarTabela(&tabela); err != nil {
		http.Error(w, "erro ao publicar tabela", http.StatusInternalServerError)
		return
	}
	if dto.Ativar {
		if err := h.Repo.Ativar(tabela.ID); err != nil {
			http.Error(w, "tabela publicada, mas falhou ao ativar", http.StatusInternalServerError)
			return
		}
		tabela.Ativa = true
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(tabela)
}

// Listar trata GET /tabelas-faixas
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListarTabelas()
	if err != nil {
		http.Error(w, "erro ao listar tabelas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// BuscarPorID trata GET /tabelas-faixas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de tabela inválido", http.StatusBadRequest)
		return
	}
	tabela, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "tabela não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(tabela)
}

// Ativar trata POST /tabelas-faixas/{id}/ativar
func (h *Handler) Ativar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de tabela inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Ativar(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "tabela não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao ativar tabela", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"message":"tabela ativada com sucesso"}`))
}

// TabelaAtiva trata GET /tabelas-faixas/ativa
func (h *Handler) TabelaAtiva(w http.ResponseWriter, r *http.Request) {
	tabela, err := h.Repo.TabelaAtiva()
	if err != nil {
		http.Error(w, "nenhuma tabela de faixas ativa", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(tabela)
}

// Resolver trata GET /tabelas-faixas/ativa/resolver?valor=12345.67
// Pré-visualiza qual faixa a tabela ativa aplicaria a um valor de vendas.
func (h *Handler) Resolver(w http.ResponseWriter, r *http.Request) {
	valor, err := decimal.NewFromString(r.URL.Query().Get("valor"))
	if err != nil {
		http.Error(w, "parâmetro 'valor' inválido", http.StatusBadRequest)
		return
	}
	tabela, err := h.Repo.TabelaAtiva()
	if err != nil {
		http.Error(w, "nenhuma tabela de faixas ativa", http.StatusNotFound)
		return
	}
	faixa, avisos, err := ResolverFaixa(valor, tabela.Faixas)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ResolucaoDTO{Faixa: *faixa, Avisos: avisos})
}
