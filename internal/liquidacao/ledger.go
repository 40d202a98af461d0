package liquidacao

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ledger é o contrato com o lado remoto que detém a verdade financeira.
// As transições de estado (abrir/fechar dia) são procedures no banco; este
// serviço não as reimplementa nem as valida além de pré-condições locais.
//
// Semântica de falha: sem retry, sem mutação otimista, sem chave de
// idempotência. Uma rejeição remota deixa o estado local intacto e a
// mensagem do servidor é repassada ao usuário.
type Ledger interface {
	// ListarPorRota retorna as liquidações da rota com abertura a partir de
	// `desde`, ordenadas por data de abertura decrescente.
	ListarPorRota(rotaID uint, desde time.Time) ([]LiquidacaoDiaria, error)

	// BuscarPorID retorna uma liquidação específica.
	BuscarPorID(id uint) (*LiquidacaoDiaria, error)

	// SaldoConta retorna o saldo da conta ativa da rota.
	SaldoConta(rotaID uint) (decimal.Decimal, error)

	// AbrirDia invoca fn_abrir_liquidacao_diaria e retorna o registro criado.
	AbrirDia(vendedorID, rotaID uint, caixaInicial decimal.Decimal, geo *Geolocalizacao) (*LiquidacaoDiaria, error)

	// FecharDia invoca fn_fechar_liquidacao_diaria e retorna o registro fechado.
	FecharDia(liquidacaoID uint, observacoes string) (*LiquidacaoDiaria, error)
}
