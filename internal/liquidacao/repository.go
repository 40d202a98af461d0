package liquidacao

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Repository implementa Ledger sobre gorm: consultas diretas para leitura e
// procedures armazenadas para as transições de estado.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// linha de retorno padrão das procedures de liquidação
type resultadoProcedure struct {
	Sucesso      bool   `gorm:"column:sucesso"`
	Mensagem     string `gorm:"column:mensagem"`
	LiquidacaoID uint   `gorm:"column:liquidacao_id"`
}

// ListarPorRota busca as liquidações da rota abertas a partir de `desde`,
// mais recentes primeiro.
func (r *Repository) ListarPorRota(rotaID uint, desde time.Time) ([]LiquidacaoDiaria, error) {
	var registros []LiquidacaoDiaria
	err := r.DB.
		Where("rota_id = ? AND data_abertura >= ?", rotaID, desde).
		Order("data_abertura DESC").
		Find(&registros).Error
	return registros, err
}

// BuscarPorID busca uma única liquidação pelo seu ID.
func (r *Repository) BuscarPorID(id uint) (*LiquidacaoDiaria, error) {
	var l LiquidacaoDiaria
	if err := r.DB.First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

// SaldoConta retorna o saldo da conta ativa da rota.
func (r *Repository) SaldoConta(rotaID uint) (decimal.Decimal, error) {
	var saldo decimal.Decimal
	err := r.DB.
		Table("contas").
		Where("rota_id = ? AND ativa = true", rotaID).
		Select("COALESCE(saldo, 0)").
		Limit(1).
		Scan(&saldo).Error
	return saldo, err
}

// AbrirDia invoca a procedure de abertura. A procedure valida a invariante de
// no máximo uma liquidação aberta por rota; aqui só repassamos o resultado.
func (r *Repository) AbrirDia(vendedorID, rotaID uint, caixaInicial decimal.Decimal, geo *Geolocalizacao) (*LiquidacaoDiaria, error) {
	var lat, lng interface{}
	if geo != nil {
		lat, lng = geo.Latitude, geo.Longitude
	}

	var res resultadoProcedure
	err := r.DB.
		Raw("SELECT * FROM fn_abrir_liquidacao_diaria(?, ?, ?, ?, ?)",
			vendedorID, rotaID, caixaInicial, lat, lng).
		Scan(&res).Error
	if err != nil {
		return nil, err
	}
	if !res.Sucesso {
		return nil, errors.New(mensagemOuPadrao(res.Mensagem, "não foi possível abrir a liquidação"))
	}
	return r.BuscarPorID(res.LiquidacaoID)
}

// FecharDia invoca a procedure de fechamento, que consolida os totais do dia.
func (r *Repository) FecharDia(liquidacaoID uint, observacoes string) (*LiquidacaoDiaria, error) {
	var res resultadoProcedure
	err := r.DB.
		Raw("SELECT * FROM fn_fechar_liquidacao_diaria(?, ?)", liquidacaoID, observacoes).
		Scan(&res).Error
	if err != nil {
		return nil, err
	}
	if !res.Sucesso {
		return nil, errors.New(mensagemOuPadrao(res.Mensagem, "não foi possível fechar a liquidação"))
	}
	return r.BuscarPorID(liquidacaoID)
}

func mensagemOuPadrao(mensagem, padrao string) string {
	if mensagem != "" {
		return mensagem
	}
	return padrao
}
