package recebedor

import (
	"gorm.io/gorm"
)

// Recebedor é quem recebe comissão: motorista da frota, indicador ou parceiro.
// Os três tipos compartilham cálculo e ciclo de vida de pagamento; o tipo
// serve para rotulagem nas telas e nos relatórios.
type Recebedor struct {
	gorm.Model
	Nome                  string `gorm:"size:100;not null" json:"nome"`
	Sobrenome             string `gorm:"size:100" json:"sobrenome"`
	Tipo                  string `gorm:"size:20;not null;index" json:"tipo"`
	Documento             string `gorm:"size:20;uniqueIndex;not null" json:"documento"`
	Email                 string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Telefone              string `gorm:"size:20" json:"telefone"`
	Foto                  string `gorm:"size:255" json:"foto"`
	Senha                 string `gorm:"size:255;not null" json:"-"`
	PrecisaRedefinirSenha bool   `gorm:"default:false" json:"precisaRedefinirSenha"`
	IsAdmin               bool   `gorm:"default:false" json:"isAdmin"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Recebedor{})
}
