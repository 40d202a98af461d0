package clienterota

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Status do dia de uma parcela na rota.
const (
	StatusPago     = "PAGO"
	StatusParcial  = "PARCIAL"
	StatusEmAtraso = "EM_ATRASO"
	StatusPendente = "PENDENTE"
)

// ClienteRotaDia é uma entrada da lista de visitas do dia: parcela a vencer
// junto com os dados de cliente e empréstimo. Snapshot somente-leitura;
// identidade composta cliente+parcela. Pagamentos mutam o lado remoto e a
// lista é rebuscada.
type ClienteRotaDia struct {
	ClienteID    uint   `gorm:"column:cliente_id" json:"clienteId"`
	ParcelaID    uint   `gorm:"column:parcela_id" json:"parcelaId"`
	EmprestimoID uint   `gorm:"column:emprestimo_id" json:"emprestimoId"`
	NomeCliente  string `gorm:"column:nome_cliente" json:"nomeCliente"`
	Telefone     string `gorm:"column:telefone" json:"telefone"`
	Endereco     string `gorm:"column:endereco" json:"endereco"`

	ValorParcela     decimal.Decimal `gorm:"column:valor_parcela" json:"valorParcela"`
	ValorPagoParcela decimal.Decimal `gorm:"column:valor_pago_parcela" json:"valorPagoParcela"`
	SaldoParcela     decimal.Decimal `gorm:"column:saldo_parcela" json:"saldoParcela"`
	DataVencimento   time.Time       `gorm:"column:data_vencimento" json:"dataVencimento"`

	StatusDia string `gorm:"-" json:"statusDia"`
}

// DerivarStatusDia classifica a parcela para o dia de referência.
func DerivarStatusDia(valor, pago decimal.Decimal, vencimento, hoje time.Time) string {
	switch {
	case pago.GreaterThanOrEqual(valor) && valor.GreaterThan(decimal.Zero):
		return StatusPago
	case pago.GreaterThan(decimal.Zero):
		return StatusParcial
	case diaAnterior(vencimento, hoje):
		return StatusEmAtraso
	default:
		return StatusPendente
	}
}

func diaAnterior(a, b time.Time) bool {
	an := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, a.Location())
	bn := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, b.Location())
	return an.Before(bn)
}

// Filtrar aplica busca textual (nome ou telefone) e filtro de status sobre a
// lista do dia. Busca vazia e status vazio deixam a lista intacta.
func Filtrar(itens []ClienteRotaDia, busca, status string) []ClienteRotaDia {
	busca = strings.ToLower(strings.TrimSpace(busca))
	out := make([]ClienteRotaDia, 0, len(itens))
	for _, it := range itens {
		if status != "" && it.StatusDia != status {
			continue
		}
		if busca != "" &&
			!strings.Contains(strings.ToLower(it.NomeCliente), busca) &&
			!strings.Contains(it.Telefone, busca) {
			continue
		}
		out = append(out, it)
	}
	return out
}
