// internal/calculocomissao/dto.go
package calculocomissao

import "github.com/shopspring/decimal"

// SimularCalculoDTO é usado em POST /calculos/simular.
// FaixaCodigo vazio delega a escolha da faixa à tabela ativa.
type SimularCalculoDTO struct {
	ValorVendas   decimal.Decimal `json:"valorVendas"`
	Notas         NotasKPI        `json:"notas"`
	QtdIndicacoes int             `json:"qtdIndicacoes"`
	FaixaCodigo   string          `json:"faixaCodigo,omitempty" validate:"max=20"`
}

// SimulacaoDTO é a resposta da simulação: o detalhamento sem persistência.
type SimulacaoDTO struct {
	Calculo CalculoComissao `json:"calculo"`
	Avisos  []string        `json:"avisos,omitempty"`
}
