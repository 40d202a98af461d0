package clienterota

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Repository encapsula a lista do dia e o registro de pagamentos.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// ListarPorRotaEData busca as parcelas com vencimento no dia, com os dados de
// cliente e empréstimo da rota. O status do dia é derivado aqui, não no banco.
func (r *Repository) ListarPorRotaEData(rotaID uint, data time.Time) ([]ClienteRotaDia, error) {
	var itens []ClienteRotaDia
	err := r.DB.
		Table("parcelas").
		Select(`parcelas.id AS parcela_id,
			parcelas.emprestimo_id,
			parcelas.valor AS valor_parcela,
			COALESCE(parcelas.valor_pago, 0) AS valor_pago_parcela,
			parcelas.valor - COALESCE(parcelas.valor_pago, 0) AS saldo_parcela,
			parcelas.data_vencimento,
			clientes.id AS cliente_id,
			clientes.nome AS nome_cliente,
			clientes.telefone,
			clientes.endereco`).
		Joins("JOIN emprestimos ON emprestimos.id = parcelas.emprestimo_id").
		Joins("JOIN clientes ON clientes.id = emprestimos.cliente_id").
		Where("emprestimos.rota_id = ? AND parcelas.data_vencimento = ?", rotaID, normalizar(data)).
		Order("clientes.nome ASC").
		Scan(&itens).Error
	if err != nil {
		return nil, err
	}

	hoje := time.Now()
	for i := range itens {
		itens[i].StatusDia = DerivarStatusDia(
			itens[i].ValorParcela, itens[i].ValorPagoParcela,
			itens[i].DataVencimento, hoje)
	}
	return itens, nil
}

// ContarPagamentos conta parcelas quitadas e não quitadas do dia.
// Implementa liquidacao.ContadorDia.
func (r *Repository) ContarPagamentos(rotaID uint, data time.Time) (int, int, error) {
	itens, err := r.ListarPorRotaEData(rotaID, data)
	if err != nil {
		return 0, 0, err
	}
	pagos, naoPagos := 0, 0
	for _, it := range itens {
		if it.StatusDia == StatusPago {
			pagos++
		} else {
			naoPagos++
		}
	}
	return pagos, naoPagos, nil
}

type resultadoPagamento struct {
	Sucesso  bool   `gorm:"column:sucesso"`
	Mensagem string `gorm:"column:mensagem"`
}

// RegistrarPagamento invoca fn_registrar_pagamento_parcela. Se a procedure
// não existir no banco, cai no update direto da parcela.
func (r *Repository) RegistrarPagamento(parcelaID uint, valor decimal.Decimal, forma, observacoes string) error {
	var res resultadoPagamento
	err := r.DB.
		Raw("SELECT * FROM fn_registrar_pagamento_parcela(?, ?, ?, ?)",
			parcelaID, valor, forma, observacoes).
		Scan(&res).Error
	if err != nil {
		if procedureAusente(err) {
			return r.registrarPagamentoDireto(parcelaID, valor)
		}
		return err
	}
	if !res.Sucesso {
		if res.Mensagem != "" {
			return errors.New(res.Mensagem)
		}
		return errors.New("não foi possível registrar o pagamento")
	}
	return nil
}

// SQLSTATE 42883: undefined_function
func procedureAusente(err error) bool {
	return strings.Contains(err.Error(), "42883") ||
		strings.Contains(err.Error(), "does not exist")
}

func (r *Repository) registrarPagamentoDireto(parcelaID uint, valor decimal.Decimal) error {
	res := r.DB.
		Table("parcelas").
		Where("id = ?", parcelaID).
		Updates(map[string]interface{}{
			"valor_pago": gorm.Expr("COALESCE(valor_pago, 0) + ?", valor),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func normalizar(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
