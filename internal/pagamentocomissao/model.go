// internal/pagamentocomissao/model.go
package pagamentocomissao

import (
	"time"

	"github.com/CacambaFacil/api-gestao/internal/calculocomissao"
	"gorm.io/gorm"
)

// Status do ciclo de vida de um pagamento de comissão.
const (
	StatusPendente   = "Pendente"
	StatusAprovado   = "Aprovado"
	StatusPago       = "Pago"
	StatusContestado = "Contestado"
)

// Eventos aceitos por Transicionar.
const (
	EventoAprovar   = "aprovar"
	EventoPagar     = "pagar"
	EventoContestar = "contestar"
	EventoResolver  = "resolver"
)

// Tipos de recebedor de comissão. Os três compartilham o mesmo cálculo e o
// mesmo ciclo de vida; o tipo serve para rotulagem e relatórios.
const (
	TipoMotorista = "motorista"
	TipoIndicador = "indicador"
	TipoParceiro  = "parceiro"
)

// TipoValido informa se o tipo de recebedor é um dos três conhecidos.
func TipoValido(tipo string) bool {
	return tipo == TipoMotorista || tipo == TipoIndicador || tipo == TipoParceiro
}

// PagamentoComissao é um pagamento de comissão de um recebedor num período.
// O cálculo embutido é imutável: transições mexem só em status e datas.
// Pagamentos nunca são apagados — recálculo cria um registro novo e marca o
// antigo como substituído, preservando o histórico para auditoria.
type PagamentoComissao struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	RecebedorID   uint   `gorm:"not null;index" json:"recebedorId"`
	TipoRecebedor string `gorm:"size:20;not null" json:"tipoRecebedor"`
	Periodo       string `gorm:"size:7;not null;index" json:"periodo"` // AAAA-MM

	CalculoID uint                            `gorm:"not null;index" json:"calculoId"`
	Calculo   calculocomissao.CalculoComissao `gorm:"foreignKey:CalculoID" json:"calculo"`

	Status            string     `gorm:"size:50;not null;default:'Pendente';index" json:"status"`
	DataPagamento     *time.Time `json:"dataPagamento"`
	MotivoContestacao string     `gorm:"size:255" json:"motivoContestacao,omitempty"`
	NotaResolucao     string     `gorm:"size:255" json:"notaResolucao,omitempty"`

	// Comprovante de pagamento e nota fiscal anexados pelo financeiro.
	Comprovante string `gorm:"size:255" json:"comprovante"`
	NotaFiscal  string `gorm:"size:255" json:"notaFiscal"`

	// Preenchido quando um recálculo substitui este pagamento.
	SubstituidoPorID *uint `gorm:"index" json:"substituidoPorId,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Migrate cria a tabela no banco de dados e aplica relacionamentos
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&PagamentoComissao{})
}
