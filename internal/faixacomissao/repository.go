// internal/faixacomissao/repository.go
package faixacomissao

import (
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para as tabelas de faixas
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// CriarTabela insere uma versão nova da tabela junto com suas faixas
func (r *Repository) CriarTabela(tabela *TabelaFaixas) error {
	return r.DB.Create(tabela).Error
}

// FindByID retorna uma versão da tabela pelo ID, com as faixas carregadas
func (r *Repository) FindByID(id uint) (*TabelaFaixas, error) {
	var tabela TabelaFaixas
	if err := r.DB.Preload("Faixas").First(&tabela, id).Error; err != nil {
		return nil, err
	}
	return &tabela, nil
}

// ListarTabelas retorna todas as versões publicadas, sem as faixas
func (r *Repository) ListarTabelas() ([]TabelaFaixas, error) {
	var list []TabelaFaixas
	err := r.DB.Order("id DESC").Find(&list).Error
	return list, err
}

// TabelaAtiva retorna a versão ativa com as faixas ordenadas por meta mínima.
// Retorna gorm.ErrRecordNotFound se nenhuma versão estiver ativa.
func (r *Repository) TabelaAtiva() (*TabelaFaixas, error) {
	var tabela TabelaFaixas
	err := r.DB.
		Preload("Faixas", func(db *gorm.DB) *gorm.DB {
			return db.Order("meta_minima ASC")
		}).
		Where("ativa = ?", true).
		First(&tabela).Error
	if err != nil {
		return nil, err
	}
	return &tabela, nil
}

// Ativar marca a versão informada como ativa e desativa as demais,
// tudo na mesma transação.
func (r *Repository) Ativar(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&TabelaFaixas{}).
			Where("ativa = ?", true).
			Update("ativa", false).Error; err != nil {
			return err
		}
		res := tx.Model(&TabelaFaixas{}).
			Where("id = ?", id).
			Update("ativa", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
