// internal/calculocomissao/repository.go
package calculocomissao

import (
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para CalculoComissao
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
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

// Create insere um cálculo de comissão já fechado. Cálculos nunca são
// atualizados: correções criam registros novos.
func (r *Repository) Create(calc *CalculoComissao) error {
	return r.DB.Create(calc).Error
}

// FindByID retorna um cálculo pelo ID
func (r *Repository) FindByID(id uint) (*CalculoComissao, error) {
	var calc CalculoComissao
	if err := r.DB.First(&calc, id).Error; err != nil {
		return nil, err
	}
	return &calc, nil
}

// FindByFaixa retorna todos os cálculos feitos com um código de faixa.
func (r *Repository) FindByFaixa(codigo string) ([]CalculoComissao, error) {
	var list []CalculoComissao
	err := r.DB.Where("faixa_codigo = ?", codigo).Find(&list).Error
	return list, err
}
