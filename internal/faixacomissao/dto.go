// internal/faixacomissao/dto.go
package faixacomissao

import "github.com/shopspring/decimal"

// FaixaDTO é uma faixa dentro do payload de publicação de tabela
type FaixaDTO struct {
	Codigo           string           `json:"codigo" validate:"required,max=20"`
	MetaMinima       decimal.Decimal  `json:"metaMinima"`
	MetaMaxima       *decimal.Decimal `json:"metaMaxima,omitempty"`
	TaxaBase         decimal.Decimal  `json:"taxaBase"`
	TaxaBonus        decimal.Decimal  `json:"taxaBonus"`
	MultiplicadorKPI decimal.Decimal  `json:"multiplicadorKpi"`
}

// PublicarTabelaDTO é usado em POST /tabelas-faixas
type PublicarTabelaDTO struct {
	Descricao string     `json:"descricao" validate:"max=255"`
	Ativar    bool       `json:"ativar"`
	Faixas    []FaixaDTO `json:"faixas" validate:"required,min=1,dive"`
}

// ResolucaoDTO é a resposta de GET /tabelas-faixas/ativa/resolver
type ResolucaoDTO struct {
	Faixa  FaixaComissao `json:"faixa"`
	Avisos []string      `json:"avisos,omitempty"`
}
