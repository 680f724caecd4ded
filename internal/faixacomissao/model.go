// internal/faixacomissao/model.go
package faixacomissao

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TabelaFaixas é uma versão publicada da tabela de faixas de comissão.
// Edições nunca alteram faixas existentes: o admin publica uma versão nova
// e a ativa, preservando os cálculos já feitos sobre versões antigas.
type TabelaFaixas struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Descricao string          `gorm:"size:255" json:"descricao"`
	Ativa     bool            `gorm:"not null;default:false;index" json:"ativa"`
	Faixas    []FaixaComissao `gorm:"foreignKey:TabelaID;constraint:OnDelete:CASCADE" json:"faixas"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// FaixaComissao representa uma faixa de meta de vendas com suas taxas.
// MetaMaxima nula significa faixa sem teto (última faixa da tabela).
type FaixaComissao struct {
	ID               uint             `gorm:"primaryKey" json:"id"`
	TabelaID         uint             `gorm:"not null;index" json:"tabelaId"`
	Codigo           string           `gorm:"size:20;not null" json:"codigo"`
	MetaMinima       decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"metaMinima"`
	MetaMaxima       *decimal.Decimal `gorm:"type:decimal(12,2)" json:"metaMaxima"`
	TaxaBase         decimal.Decimal  `gorm:"type:decimal(5,2);not null" json:"taxaBase"`
	TaxaBonus        decimal.Decimal  `gorm:"type:decimal(5,2);not null" json:"taxaBonus"`
	MultiplicadorKPI decimal.Decimal  `gorm:"type:decimal(4,2);not null;default:1" json:"multiplicadorKpi"`
	CreatedAt        time.Time        `json:"createdAt"`
}

// Migrate cria as tabelas no banco de dados e aplica relacionamentos
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&TabelaFaixas{}, &FaixaComissao{})
}
