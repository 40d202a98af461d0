package liquidacao

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Status possíveis de uma liquidação diária. APROVADO é terminal e só é
// atribuído pelo back-office; este serviço nunca o escreve.
const (
	StatusAberto   = "ABERTO"
	StatusFechado  = "FECHADO"
	StatusAprovado = "APROVADO"
	StatusReaberto = "REABERTO"
)

// LiquidacaoDiaria é o fechamento de caixa de uma rota em um dia.
// O registro é criado e mutado pelas procedures remotas; aqui ele é
// apenas lido e reapresentado.
type LiquidacaoDiaria struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	RotaID     uint `gorm:"not null;index" json:"rotaId"`
	VendedorID uint `gorm:"not null;index" json:"vendedorId"`
	EmpresaID  uint `gorm:"not null" json:"empresaId"`

	DataAbertura   time.Time  `gorm:"not null;index" json:"dataAbertura"`
	DataFechamento *time.Time `json:"dataFechamento"`
	Status         string     `gorm:"size:20;not null;default:'ABERTO';index" json:"status"`
	Observacoes    string     `gorm:"size:500" json:"observacoes"`

	CaixaInicial       decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"caixaInicial"`
	CaixaFinal         decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"caixaFinal"`
	ValorEsperadoDia   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"valorEsperadoDia"`
	ValorRecebidoDia   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"valorRecebidoDia"`
	TotalDespesas      decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"totalDespesas"`
	TotalEmprestado    decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"totalEmprestado"`
	TotalMicrosseguros decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"totalMicrosseguros"`

	ClientesIniciais     int `gorm:"not null;default:0" json:"clientesIniciais"`
	ClientesNovos        int `gorm:"not null;default:0" json:"clientesNovos"`
	ClientesRenovados    int `gorm:"not null;default:0" json:"clientesRenovados"`
	ClientesRenegociados int `gorm:"not null;default:0" json:"clientesRenegociados"`
	ClientesCancelados   int `gorm:"not null;default:0" json:"clientesCancelados"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EmAberto indica se a liquidação ainda aceita operação (aberta ou reaberta).
func (l *LiquidacaoDiaria) EmAberto() bool {
	return l.Status == StatusAberto || l.Status == StatusReaberto
}

// Geolocalizacao opcionalmente registrada na abertura do dia.
type Geolocalizacao struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&LiquidacaoDiaria{})
}
