// internal/pagamentocomissao/repository.go
package pagamentocomissao

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de Pagamentos de Comissão.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// WithDB retorna uma cópia do repo usando um *gorm.DB específico (ex.: tx).
func (r *Repository) WithDB(db *gorm.DB) *Repository {
	if db == nil {
		db = r.DB
	}
	return &Repository{DB: db}
}

/* ========================= CRUD básico ========================= */

// Create insere um pagamento novo (status inicial Pendente).
func (r *Repository) Create(p *PagamentoComissao) error {
	return r.DB.Create(p).Error
}

// FindByID busca um pagamento com o cálculo carregado.
func (r *Repository) FindByID(id uint) (*PagamentoComissao, error) {
	var p PagamentoComissao
	if err := r.DB.Preload("Calculo").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByRecebedor busca os pagamentos de um recebedor, mais recentes primeiro.
func (r *Repository) ListByRecebedor(recebedorID uint) ([]PagamentoComissao, error) {
	var list []PagamentoComissao
	err := r.DB.
		Preload("Calculo").
		Where("recebedor_id = ?", recebedorID).
		Order("periodo DESC").
		Find(&list).Error
	return list, err
}

// ListByPeriodo busca os pagamentos de um período, com filtro opcional de status.
func (r *Repository) ListByPeriodo(periodo, status string) ([]PagamentoComissao, error) {
	var list []PagamentoComissao
	q := r.DB.Preload("Calculo").Where("periodo = ?", periodo)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("recebedor_id ASC").Find(&list).Error
	return list, err
}

// AtivoPorRecebedorEPeriodo busca o pagamento não substituído de um
// recebedor num período, se existir.
func (r *Repository) AtivoPorRecebedorEPeriodo(recebedorID uint, periodo string) (*PagamentoComissao, error) {
	var p PagamentoComissao
	err := r.DB.
		Preload("Calculo").
		Where("recebedor_id = ? AND periodo = ? AND substituido_por_id IS NULL", recebedorID, periodo).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

/* ========================= Transições ========================= */

// AplicarTransicao grava o resultado de Transicionar com a mesma pré-condição
// de status usada no cálculo da transição. Se o registro mudou no meio do
// caminho (outro operador agiu antes), nada é gravado e o chamador recebe
// ErrModificacaoConcorrente.
func (r *Repository) AplicarTransicao(atualizado *PagamentoComissao, statusEsperado string) error {
	updates := map[string]interface{}{
		"status":             atualizado.Status,
		"motivo_contestacao": atualizado.MotivoContestacao,
		"nota_resolucao":     atualizado.NotaResolucao,
		"data_pagamento":     atualizado.DataPagamento,
	}
	res := r.DB.Model(&PagamentoComissao{}).
		Where("id = ? AND status = ?", atualizado.ID, statusEsperado).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrModificacaoConcorrente
	}
	return nil
}

// MarcarSubstituido liga o pagamento antigo ao que o substituiu e aplica o
// soft delete, tirando-o das listagens sem apagar o histórico.
func (r *Repository) MarcarSubstituido(db *gorm.DB, antigoID, novoID uint) error {
	if db == nil {
		db = r.DB
	}
	if err := db.Model(&PagamentoComissao{}).
		Where("id = ?", antigoID).
		Update("substituido_por_id", novoID).Error; err != nil {
		return err
	}
	return db.Delete(&PagamentoComissao{}, antigoID).Error
}

/* ============================= Anexos ============================= */

// UpdateComprovante atualiza o campo 'comprovante' de um pagamento.
func (r *Repository) UpdateComprovante(id uint, comprovante string) error {
	return r.DB.Model(&PagamentoComissao{}).
		Where("id = ?", id).
		Update("comprovante", comprovante).Error
}

// UpdateNotaFiscal atualiza a nota fiscal de um pagamento.
func (r *Repository) UpdateNotaFiscal(id uint, notaFiscal string) error {
	return r.DB.Model(&PagamentoComissao{}).
		Where("id = ?", id).
		Update("nota_fiscal", notaFiscal).Error
}

/* ========================= Agregações ========================= */

// SumLiquidoByStatus soma o valor líquido dos pagamentos de um status,
// com filtro opcional de período.
func (r *Repository) SumLiquidoByStatus(status, periodo string) (decimal.Decimal, error) {
	var total decimal.Decimal
	q := r.DB.Model(&PagamentoComissao{}).
		Joins("JOIN calculo_comissaos ON calculo_comissaos.id = pagamento_comissaos.calculo_id").
		Where("pagamento_comissaos.status = ?", status)
	if periodo != "" {
		q = q.Where("pagamento_comissaos.periodo = ?", periodo)
	}
	err := q.Select("COALESCE(SUM(calculo_comissaos.valor_liquido), 0)").Scan(&total).Error
	return total, err
}

// SumLiquidoByRecebedor soma o valor líquido de todos os pagamentos de um recebedor.
func (r *Repository) SumLiquidoByRecebedor(recebedorID uint) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.DB.Model(&PagamentoComissao{}).
		Joins("JOIN calculo_comissaos ON calculo_comissaos.id = pagamento_comissaos.calculo_id").
		Where("pagamento_comissaos.recebedor_id = ?", recebedorID).
		Select("COALESCE(SUM(calculo_comissaos.valor_liquido), 0)").
		Scan(&total).Error
	return total, err
}

// CountByStatus conta pagamentos por status num período.
func (r *Repository) CountByStatus(status, periodo string) (int64, error) {
	var n int64
	q := r.DB.Model(&PagamentoComissao{}).Where("status = ?", status)
	if periodo != "" {
		q = q.Where("periodo = ?", periodo)
	}
	err := q.Count(&n).Error
	return n, err
}
