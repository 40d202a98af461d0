package liquidacao

import (
	"errors"
	"time"
)

// Modo de exibição da tela de liquidação.
type Modo string

const (
	// ModoCalendario: nenhum dia em foco; o usuário escolhe no calendário.
	ModoCalendario Modo = "CALENDARIO"
	// ModoPainelDia: o dia de hoje está aberto e operável.
	ModoPainelDia Modo = "PAINEL_DIA"
	// ModoHistorico: consulta somente-leitura de um dia passado (ou vazio).
	ModoHistorico Modo = "HISTORICO"
)

// Estado é o estado de tela do fluxo de liquidação. As transições são
// funções puras; efeitos (chamadas remotas) ficam a cargo de quem as observa.
type Estado struct {
	Modo       Modo              `json:"modo"`
	Liquidacao *LiquidacaoDiaria `json:"liquidacao"`
	Data       time.Time         `json:"data"`
}

// NormalizarData zera a hora, preservando o fuso. Toda comparação de
// calendário neste pacote ignora a hora do dia.
func NormalizarData(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MesmaData compara apenas o dia de calendário de dois instantes.
func MesmaData(a, b time.Time) bool {
	return NormalizarData(a).Equal(NormalizarData(b))
}

// ErrLiquidacaoJaAberta é a pré-condição local de abertura: existindo uma
// liquidação aberta (ou reaberta) na janela, nenhuma chamada remota é feita.
var ErrLiquidacaoJaAberta = errors.New("já existe uma liquidação em aberto para esta rota")

// EmAbertoNaJanela retorna a liquidação aberta/reaberta da janela, se houver.
// A invariante de unicidade é do lado remoto; aqui apenas a assumimos.
func EmAbertoNaJanela(registros []LiquidacaoDiaria) *LiquidacaoDiaria {
	for i := range registros {
		if registros[i].EmAberto() {
			return &registros[i]
		}
	}
	return nil
}

// EstadoInicial deriva o modo a partir da janela de registros: exatamente uma
// liquidação aberta leva ao painel do dia; qualquer outra situação, ao
// calendário.
func EstadoInicial(registros []LiquidacaoDiaria, hoje time.Time) Estado {
	abertas := 0
	var foco *LiquidacaoDiaria
	for i := range registros {
		if registros[i].EmAberto() {
			abertas++
			foco = &registros[i]
		}
	}
	if abertas == 1 {
		return Estado{Modo: ModoPainelDia, Liquidacao: foco, Data: hoje}
	}
	return Estado{Modo: ModoCalendario, Data: hoje}
}

// SelecionarDia foca um dia escolhido no calendário. Dia com registro aberto
// volta ao painel vivo; registro fechado/aprovado ou dia sem registro viram
// consulta histórica (esta última renderiza zeros).
func SelecionarDia(registro *LiquidacaoDiaria, data time.Time) Estado {
	if registro != nil && registro.EmAberto() {
		return Estado{Modo: ModoPainelDia, Liquidacao: registro, Data: data}
	}
	return Estado{Modo: ModoHistorico, Liquidacao: registro, Data: data}
}

// VoltarParaHoje rederiva o modo a partir da janela atual, exatamente como na
// carga inicial.
func VoltarParaHoje(registros []LiquidacaoDiaria, hoje time.Time) Estado {
	return EstadoInicial(registros, hoje)
}

// PodeAbrirDia valida a pré-condição local de abertura. O lado remoto é a
// autoridade final e ainda pode rejeitar.
func PodeAbrirDia(registros []LiquidacaoDiaria) error {
	if EmAbertoNaJanela(registros) != nil {
		return ErrLiquidacaoJaAberta
	}
	return nil
}

// PodeFecharDia indica se o estado atual permite o fechamento. Navegar pelo
// histórico é sempre somente-leitura, mesmo que o registro em foco esteja
// aberto.
func PodeFecharDia(e Estado) bool {
	return e.Modo != ModoHistorico && e.Liquidacao != nil && e.Liquidacao.EmAberto()
}
