package liquidacao

import "github.com/shopspring/decimal"

// Agregados derivados do registro em foco. São recalculados a cada consulta,
// nunca persistidos nem cacheados.

// TotalClientes = iniciais + novos + renovados + renegociados − cancelados.
// Pode ser negativo quando cancelados excede os demais; não há clamp.
func TotalClientes(l *LiquidacaoDiaria) int {
	if l == nil {
		return 0
	}
	return l.ClientesIniciais + l.ClientesNovos + l.ClientesRenovados +
		l.ClientesRenegociados - l.ClientesCancelados
}

// CaixaAtual = caixa inicial + recebido − despesas − emprestado.
func CaixaAtual(l *LiquidacaoDiaria) decimal.Decimal {
	if l == nil {
		return decimal.Zero
	}
	return l.CaixaInicial.
		Add(l.ValorRecebidoDia).
		Sub(l.TotalDespesas).
		Sub(l.TotalEmprestado)
}

// Eficacia = pagos / (pagos + não pagos), em porcentagem.
// Denominador zero exibe 0%.
func Eficacia(pagos, naoPagos int) float64 {
	total := pagos + naoPagos
	if total == 0 {
		return 0
	}
	return float64(pagos) / float64(total) * 100
}

// Progresso = recebido / esperado, em porcentagem, limitado a [0, 100].
func Progresso(recebido, esperado decimal.Decimal) float64 {
	if esperado.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	p, _ := recebido.Div(esperado).Mul(decimal.NewFromInt(100)).Float64()
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
