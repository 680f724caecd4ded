// internal/pagamentocomissao/handler.go
package pagamentocomissao

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/CacambaFacil/api-gestao/internal/calculocomissao"
	"github.com/CacambaFacil/api-gestao/internal/faixacomissao"
	"github.com/CacambaFacil/api-gestao/internal/notificacao"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gerencia rotas de pagamentos de comissão
type Handler struct {
	Repo     *Repository
	Calculos *calculocomissao.Repository
	Faixas   *faixacomissao.Repository
	Params   calculocomissao.Parametros
	validate *validator.Validate
}

// NewHandler cria um novo Handler
func NewHandler(repo *Repository, calculos *calculocomissao.Repository, faixas *faixacomissao.Repository, params calculocomissao.Parametros) *Handler {
	return &Handler{
		Repo:     repo,
		Calculos: calculos,
		Faixas:   faixas,
		Params:   params,
		validate: validator.New(),
	}
}

// calcular resolve a faixa (ativa ou por código) e roda o cálculo puro.
func (h *Handler) calcular(dto CriarPagamentoDTO) (calculocomissao.CalculoComissao, []string, error) {
	tabela, err := h.Faixas.TabelaAtiva()
	if err != nil {
		return calculocomissao.CalculoComissao{}, nil, err
	}
	if dto.FaixaCodigo != "" {
		calc, err := calculocomissao.CalcularPorCodigo(dto.ValorVendas, dto.Notas, dto.QtdIndicacoes, dto.FaixaCodigo, tabela.Faixas, h.Params)
		return calc, nil, err
	}
	return calculocomissao.CalcularComTabela(dto.ValorVendas, dto.Notas, dto.QtdIndicacoes, tabela.Faixas, h.Params)
}

// Create trata POST /recebedores/{id}/pagamentos
// Calcula a comissão do período e abre o pagamento em Pendente, tudo numa
// transação: cálculo sem pagamento não deve existir.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	recebedorID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de recebedor inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var dto CriarPagamentoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		http.Error(w, "payload inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	// Um pagamento ativo por recebedor/período; correção é via recálculo.
	if _, err := h.Repo.AtivoPorRecebedorEPeriodo(uint(recebedorID), dto.Periodo); err == nil {
		http.Error(w, "já existe pagamento para este recebedor no período", http.StatusConflict)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "erro ao verificar pagamentos do período", http.StatusInternalServerError)
		return
	}

	calc, avisos, err := h.calcular(dto)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "nenhuma tabela de faixas ativa", http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), statusDoErroDeCalculo(err))
		return
	}
	for _, aviso := range avisos {
		w.Header().Add("X-Aviso-Configuracao", aviso)
	}

	pagamento := PagamentoComissao{
		RecebedorID:   uint(recebedorID),
		TipoRecebedor: dto.TipoRecebedor,
		Periodo:       dto.Periodo,
		Status:        StatusPendente,
	}

	tx := h.Repo.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "não foi possível iniciar transação", http.StatusInternalServerError)
		return
	}
	if err := h.Calculos.WithDB(tx).Create(&calc); err != nil {
		_ = tx.Rollback()
		http.Error(w, "erro ao gravar cálculo", http.StatusInternalServerError)
		return
	}
	pagamento.CalculoID = calc.ID
	if err := h.Repo.WithDB(tx).Create(&pagamento); err != nil {
		_ = tx.Rollback()
		http.Error(w, "erro ao criar pagamento", http.StatusInternalServerError)
		return
	}
	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "erro ao confirmar transação", http.StatusInternalServerError)
		return
	}

	// recarrega (fora da tx) com o cálculo embutido
	criado, err := h.Repo.FindByID(pagamento.ID)
	if err != nil {
		http.Error(w, "erro ao carregar pagamento", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(criado)
}

// Recalcular trata POST /pagamentos/{pid}/recalcular
// Gera cálculo e pagamento novos e marca o antigo como substituído — o
// registro antigo nunca é apagado de verdade.
func (h *Handler) Recalcular(w http.ResponseWriter, r *http.Request) {
	pid, err := strconv.Atoi(mux.Vars(r)["pid"])
	if err != nil {
		http.Error(w, "ID do pagamento inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var dto RecalcularDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		http.Error(w, "payload inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	antigo, err := h.Repo.FindByID(uint(pid))
	if err != nil {
		http.Error(w, "pagamento não encontrado", http.StatusNotFound)
		return
	}
	if antigo.Status == StatusPago {
		http.Error(w, "pagamento já efetuado não pode ser recalculado", http.StatusConflict)
		return
	}
	if antigo.SubstituidoPorID != nil {
		http.Error(w, "pagamento já foi substituído por recálculo", http.StatusConflict)
		return
	}

	calc, avisos, err := h.calcular(CriarPagamentoDTO{
		TipoRecebedor: antigo.TipoRecebedor,
		Periodo:       antigo.Periodo,
		ValorVendas:   dto.ValorVendas,
		Notas:         dto.Notas,
		QtdIndicacoes: dto.QtdIndicacoes,
		FaixaCodigo:   dto.FaixaCodigo,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "nenhuma tabela de faixas ativa", http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), statusDoErroDeCalculo(err))
		return
	}
	for _, aviso := range avisos {
		w.Header().Add("X-Aviso-Configuracao", aviso)
	}

	novo := PagamentoComissao{
		RecebedorID:   antigo.RecebedorID,
		TipoRecebedor: antigo.TipoRecebedor,
		Periodo:       antigo.Periodo,
		Status:        StatusPendente,
	}

	tx := h.Repo.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "não foi possível iniciar transação", http.StatusInternalServerError)
		return
	}
	if err := h.Calculos.WithDB(tx).Create(&calc); err != nil {
		_ = tx.Rollback()
		http.Error(w, "erro ao gravar cálculo", http.StatusInternalServerError)
		return
	}
	novo.CalculoID = calc.ID
	if err := h.Repo.WithDB(tx).Create(&novo); err != nil {
		_ = tx.Rollback()
		http.Error(w, "erro ao criar pagamento", http.StatusInternalServerError)
		return
	}
	if err := h.Repo.MarcarSubstituido(tx, antigo.ID, novo.ID); err != nil {
		_ = tx.Rollback()
		http.Error(w, "erro ao marcar pagamento substituído", http.StatusInternalServerError)
		return
	}
	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "erro ao confirmar transação", http.StatusInternalServerError)
		return
	}

	criado, err := h.Repo.FindByID(novo.ID)
	if err != nil {
		http.Error(w, "erro ao carregar pagamento", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(criado)
}

// Transicao trata PATCH /pagamentos/{pid}/transicao
func (h *Handler) Transicao(w http.ResponseWriter, r *http.Request) {
	pid, err := strconv.Atoi(mux.Vars(r)["pid"])
	if err != nil {
		http.Error(w, "ID do pagamento inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var dto TransicaoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		http.Error(w, "payload inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	pagamento, err := h.Repo.FindByID(uint(pid))
	if err != nil {
		http.Error(w, "pagamento não encontrado", http.StatusNotFound)
		return
	}

	atualizado, err := Transicionar(*pagamento, dto.Evento, DadosTransicao{
		Motivo:  dto.Motivo,
		Destino: dto.Destino,
	}, dto.StatusEsperado, time.Now().UTC())
	if err != nil {
		http.Error(w, err.Error(), statusDaTransicao(err))
		return
	}

	if err := h.Repo.AplicarTransicao(&atualizado, dto.StatusEsperado); err != nil {
		if errors.Is(err, ErrModificacaoConcorrente) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, "erro ao gravar transição", http.StatusInternalServerError)
		return
	}

	if atualizado.Status == StatusContestado {
		// Alerta fora do caminho da resposta; falha de webhook não bloqueia.
		go notificacao.EnviarAlertaContestacao(atualizado.ID, atualizado.RecebedorID, atualizado.MotivoContestacao)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(atualizado)
}

// Get trata GET /pagamentos/{pid}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	pid, err := strconv.Atoi(mux.Vars(r)["pid"])
	if err != nil {
		http.Error(w, "ID do pagamento inválido", http.StatusBadRequest)
		return
	}
	pagamento, err := h.Repo.FindByID(uint(pid))
	if err != nil {
		http.Error(w, "pagamento não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(pagamento)
}

// List trata GET /pagamentos?periodo=AAAA-MM&status=...
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	periodo := r.URL.Query().Get("periodo")
	if periodo == "" {
		http.Error(w, "parâmetro 'periodo' é obrigatório", http.StatusBadRequest)
		return
	}
	list, err := h.Repo.ListByPeriodo(periodo, r.URL.Query().Get("status"))
	if err != nil {
		http.Error(w, "erro ao buscar pagamentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// ListByRecebedor trata GET /recebedores/{id}/pagamentos
func (h *Handler) ListByRecebedor(w http.ResponseWriter, r *http.Request) {
	recebedorID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de recebedor inválido", http.StatusBadRequest)
		return
	}
	list, err := h.Repo.ListByRecebedor(uint(recebedorID))
	if err != nil {
		http.Error(w, "erro ao buscar pagamentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

/* ============================== Anexos ============================== */

// UpdateComprovante trata POST /pagamentos/{pid}/comprovante
func (h *Handler) UpdateComprovante(w http.ResponseWriter, r *http.Request) {
	h.atualizarAnexo(w, r, "comprovante")
}

// DeleteComprovante trata DELETE /pagamentos/{pid}/comprovante
func (h *Handler) DeleteComprovante(w http.ResponseWriter, r *http.Request) {
	h.removerAnexo(w, r, "comprovante")
}

// UpdateNotaFiscal trata POST /pagamentos/{pid}/nota-fiscal
func (h *Handler) UpdateNotaFiscal(w http.ResponseWriter, r *http.Request) {
	h.atualizarAnexo(w, r, "notaFiscal")
}

// DeleteNotaFiscal trata DELETE /pagamentos/{pid}/nota-fiscal
func (h *Handler) DeleteNotaFiscal(w http.ResponseWriter, r *http.Request) {
	h.removerAnexo(w, r, "notaFiscal")
}

func (h *Handler) atualizarAnexo(w http.ResponseWriter, r *http.Request, campo string) {
	pid, err := strconv.Atoi(mux.Vars(r)["pid"])
	if err != nil {
		http.Error(w, "ID do pagamento inválido", http.StatusBadRequest)
		return
	}
	var payload struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.gravarAnexo(uint(pid), campo, payload.URL); err != nil {
		http.Error(w, "erro ao atualizar anexo do pagamento", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"message":"anexo atualizado com sucesso"}`))
}

func (h *Handler) removerAnexo(w http.ResponseWriter, r *http.Request, campo string) {
	pid, err := strconv.Atoi(mux.Vars(r)["pid"])
	if err != nil {
		http.Error(w, "ID do pagamento inválido", http.StatusBadRequest)
		return
	}
	if err := h.gravarAnexo(uint(pid), campo, ""); err != nil {
		http.Error(w, "erro ao remover anexo do pagamento", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"message":"anexo removido com sucesso"}`))
}

func (h *Handler) gravarAnexo(pid uint, campo, url string) error {
	if campo == "notaFiscal" {
		return h.Repo.UpdateNotaFiscal(pid, url)
	}
	return h.Repo.UpdateComprovante(pid, url)
}

/* ============================ Relatórios ============================ */

// RelatorioPeriodo trata GET /relatorios/pagamentos?periodo=AAAA-MM
// Carrega os pagamentos do período e agrega com as funções puras de relatório.
func (h *Handler) RelatorioPeriodo(w http.ResponseWriter, r *http.Request) {
	periodo := r.URL.Query().Get("periodo")
	if periodo == "" {
		http.Error(w, "parâmetro 'periodo' é obrigatório", http.StatusBadRequest)
		return
	}
	pagamentos, err := h.Repo.ListByPeriodo(periodo, "")
	if err != nil {
		http.Error(w, "erro ao buscar pagamentos do período", http.StatusInternalServerError)
		return
	}

	qtd := make(map[string]int)
	for _, p := range pagamentos {
		qtd[p.Status]++
	}

	dto := RelatorioPeriodoDTO{
		Periodo:           periodo,
		TotalPago:         TotalPago(pagamentos),
		TotalPendente:     TotalPendente(pagamentos),
		MediaKPI:          MediaKPI(pagamentos),
		TotalPorRecebedor: TotalPorRecebedor(pagamentos),
		QtdPorStatus:      qtd,
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(dto)
}

// RelatorioGeral trata GET /relatorios/pagamentos/geral
// Números de todos os períodos, agregados direto no banco.
func (h *Handler) RelatorioGeral(w http.ResponseWriter, r *http.Request) {
	var dto RelatorioGeralDTO
	var err error

	if dto.TotalPago, err = h.Repo.SumLiquidoByStatus(StatusPago, ""); err != nil {
		http.Error(w, "erro ao somar pagamentos", http.StatusInternalServerError)
		return
	}
	if dto.TotalPendente, err = h.Repo.SumLiquidoByStatus(StatusPendente, ""); err != nil {
		http.Error(w, "erro ao somar pagamentos", http.StatusInternalServerError)
		return
	}
	if dto.TotalContestado, err = h.Repo.SumLiquidoByStatus(StatusContestado, ""); err != nil {
		http.Error(w, "erro ao somar pagamentos", http.StatusInternalServerError)
		return
	}
	if dto.QtdPagos, err = h.Repo.CountByStatus(StatusPago, ""); err != nil {
		http.Error(w, "erro ao contar pagamentos", http.StatusInternalServerError)
		return
	}
	if dto.QtdPendentes, err = h.Repo.CountByStatus(StatusPendente, ""); err != nil {
		http.Error(w, "erro ao contar pagamentos", http.StatusInternalServerError)
		return
	}
	if dto.QtdContestados, err = h.Repo.CountByStatus(StatusContestado, ""); err != nil {
		http.Error(w, "erro ao contar pagamentos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(dto)
}

/* ============================ Utilidades ============================ */

// statusDaTransicao traduz o erro da máquina de estados em status HTTP.
func statusDaTransicao(err error) int {
	var transicao *ErroTransicaoInvalida
	switch {
	case errors.Is(err, ErrModificacaoConcorrente):
		return http.StatusConflict
	case errors.Is(err, ErrStatusTerminal):
		return http.StatusConflict
	case errors.Is(err, ErrMotivoObrigatorio), errors.Is(err, ErrDestinoResolucaoInvalido):
		return http.StatusBadRequest
	case errors.As(err, &transicao):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// statusDoErroDeCalculo traduz erros do núcleo de cálculo em status HTTP.
func statusDoErroDeCalculo(err error) int {
	var foraDoIntervalo *calculocomissao.ErroNotaKPIForaDoIntervalo
	var negativo *calculocomissao.ErroValorNegativo
	switch {
	case errors.Is(err, faixacomissao.ErrNenhumaFaixa), errors.Is(err, faixacomissao.ErrFaixaDesconhecida):
		return http.StatusUnprocessableEntity
	case errors.As(err, &foraDoIntervalo), errors.As(err, &negativo):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
