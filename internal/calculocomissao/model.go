// internal/calculocomissao/model.go
package calculocomissao

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CalculoComissao é o detalhamento imutável de uma comissão calculada.
// Uma vez gravado, nunca é recalculado em cima: correção gera um cálculo novo
// ligado a um pagamento novo, preservando o antigo para auditoria.
type CalculoComissao struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	FaixaCodigo string `gorm:"size:20;not null;index" json:"faixaCodigo"`

	// Entradas do cálculo, guardadas para auditoria e recálculo.
	ValorVendas           decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"valorVendas"`
	QtdIndicacoes         int             `gorm:"not null;default:0" json:"qtdIndicacoes"`
	PrazoEntrega          decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"prazoEntrega"`
	SatisfacaoCliente     decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"satisfacaoCliente"`
	Seguranca             decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"seguranca"`
	EficienciaCombustivel decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"eficienciaCombustivel"`
	Assiduidade           decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"assiduidade"`

	// Saídas.
	NotaKPI         decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"notaKpi"`
	ComissaoBase    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"comissaoBase"`
	BonusDesempenho decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"bonusDesempenho"`
	BonusIndicacao  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"bonusIndicacao"`
	TotalBruto      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"totalBruto"`
	DeducaoImposto  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"deducaoImposto"`
	ValorLiquido    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"valorLiquido"`

	CreatedAt time.Time `json:"createdAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&CalculoComissao{})
}
