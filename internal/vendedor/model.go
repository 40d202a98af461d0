package vendedor

import (
	"time"

	"gorm.io/gorm"
)

// Vendedor é o agente de campo que percorre a rota cobrando parcelas.
// O login é por código de acesso numérico + senha.
type Vendedor struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Nome         string `gorm:"size:100;not null" json:"nome"`
	Sobrenome    string `gorm:"size:100" json:"sobrenome"`
	CodigoAcesso string `gorm:"size:20;uniqueIndex;not null" json:"codigoAcesso"`
	Senha        string `gorm:"size:255;not null" json:"-"` // não expõe a senha no JSON
	Telefone     string `gorm:"size:20" json:"telefone"`
	Foto         string `gorm:"size:255" json:"foto"`

	EmpresaID uint   `gorm:"not null" json:"empresaId"`
	RotaID    uint   `gorm:"not null;index" json:"rotaId"`
	RotaNome  string `gorm:"size:100" json:"rotaNome"`
	Ativo     bool   `gorm:"default:true" json:"ativo"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Vendedor{})
}
