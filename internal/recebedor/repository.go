package recebedor

import (
	"gorm.io/gorm"
)

type Repository interface {
	BuscarPorEmailOuDocumento(db *gorm.DB, login string) (*Recebedor, error)
	Salvar(db *gorm.DB, r *Recebedor) error
	ListarTodos(db *gorm.DB) ([]Recebedor, error)
	ListarPorTipo(db *gorm.DB, tipo string) ([]Recebedor, error)
	BuscarPorID(db *gorm.DB, id uint) (*Recebedor, error)
	Atualizar(db *gorm.DB, id uint, req *UpdateRecebedorRequest) error
	AtualizarSenha(db *gorm.DB, id uint, hash string) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) BuscarPorEmailOuDocumento(db *gorm.DB, login string) (*Recebedor, error) {
	var rec Recebedor
	if err := db.Where("email = ? OR documento = ?", login, login).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repositoryImpl) Salvar(db *gorm.DB, rec *Recebedor) error {
	return db.Create(rec).Error
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Recebedor, error) {
	var list []Recebedor
	err := db.Order("nome ASC").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ListarPorTipo(db *gorm.DB, tipo string) ([]Recebedor, error) {
	var list []Recebedor
	err := db.Where("tipo = ?", tipo).Order("nome ASC").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Recebedor, error) {
	var rec Recebedor
	if err := db.First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, req *UpdateRecebedorRequest) error {
	updates := map[string]interface{}{}
	if req.Nome != nil {
		updates["nome"] = *req.Nome
	}
	if req.Sobrenome != nil {
		updates["sobrenome"] = *req.Sobrenome
	}
	if req.Telefone != nil {
		updates["telefone"] = *req.Telefone
	}
	if req.Foto != nil {
		updates["foto"] = *req.Foto
	}
	if len(updates) == 0 {
		return nil
	}
	return db.Model(&Recebedor{}).Where("id = ?", id).Updates(updates).Error
}

// AtualizarSenha grava o hash novo e encerra a obrigação de redefinir.
func (r *repositoryImpl) AtualizarSenha(db *gorm.DB, id uint, hash string) error {
	return db.Model(&Recebedor{}).Where("id = ?", id).Updates(map[string]interface{}{
		"senha":                   hash,
		"precisa_redefinir_senha": false,
	}).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Recebedor{}, id).Error
}
