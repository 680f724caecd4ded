// internal/pagamentocomissao/dto.go
package pagamentocomissao

import (
	"github.com/CacambaFacil/api-gestao/internal/calculocomissao"
	"github.com/shopspring/decimal"
)

// CriarPagamentoDTO é usado em POST /recebedores/{id}/pagamentos.
// FaixaCodigo vazio delega a escolha da faixa à tabela ativa.
type CriarPagamentoDTO struct {
	TipoRecebedor string                   `json:"tipoRecebedor" validate:"required,oneof=motorista indicador parceiro"`
	Periodo       string                   `json:"periodo" validate:"required,datetime=2006-01"`
	ValorVendas   decimal.Decimal          `json:"valorVendas"`
	Notas         calculocomissao.NotasKPI `json:"notas"`
	QtdIndicacoes int                      `json:"qtdIndicacoes"`
	FaixaCodigo   string                   `json:"faixaCodigo,omitempty" validate:"max=20"`
}

// RecalcularDTO é usado em POST /pagamentos/{pid}/recalcular.
// Traz as entradas corrigidas; o pagamento antigo é preservado e marcado
// como substituído pelo novo.
type RecalcularDTO struct {
	ValorVendas   decimal.Decimal          `json:"valorVendas"`
	Notas         calculocomissao.NotasKPI `json:"notas"`
	QtdIndicacoes int                      `json:"qtdIndicacoes"`
	FaixaCodigo   string                   `json:"faixaCodigo,omitempty" validate:"max=20"`
}

// TransicaoDTO é usado em PATCH /pagamentos/{pid}/transicao.
// StatusEsperado é a pré-condição de concorrência otimista: o status que a
// tela exibia quando o operador agiu. Motivo é obrigatório em "contestar" e
// opcional em "resolver" (vira a nota de resolução).
type TransicaoDTO struct {
	Evento         string `json:"evento" validate:"required,oneof=aprovar pagar contestar resolver"`
	StatusEsperado string `json:"statusEsperado" validate:"required"`
	Motivo         string `json:"motivo,omitempty"`
	Destino        string `json:"destino,omitempty"`
}

// RelatorioPeriodoDTO é a resposta de GET /relatorios/pagamentos.
type RelatorioPeriodoDTO struct {
	Periodo           string                   `json:"periodo"`
	TotalPago         decimal.Decimal          `json:"totalPago"`
	TotalPendente     decimal.Decimal          `json:"totalPendente"`
	MediaKPI          decimal.Decimal          `json:"mediaKpi"`
	TotalPorRecebedor map[uint]decimal.Decimal `json:"totalPorRecebedor"`
	QtdPorStatus      map[string]int           `json:"qtdPorStatus"`
}

// RelatorioGeralDTO é a resposta de GET /relatorios/pagamentos/geral.
type RelatorioGeralDTO struct {
	TotalPago       decimal.Decimal `json:"totalPago"`
	TotalPendente   decimal.Decimal `json:"totalPendente"`
	TotalContestado decimal.Decimal `json:"totalContestado"`
	QtdPagos        int64           `json:"qtdPagos"`
	QtdPendentes    int64           `json:"qtdPendentes"`
	QtdContestados  int64           `json:"qtdContestados"`
}
