package calendario

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CobraFacil/api-vendedor/internal/liquidacao"
)

func dia(ano int, mes time.Month, d int) time.Time {
	return time.Date(ano, mes, d, 0, 0, 0, 0, time.UTC)
}

// referência dos cenários: sexta-feira, 15 de março de 2024
var ref = time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)

func TestGerarGradeSempre42Celulas(t *testing.T) {
	casos := []struct {
		mes time.Month
		ano int
	}{
		{time.March, 2024},
		{time.February, 2024},  // bissexto
		{time.February, 2023},  // 28 dias
		{time.December, 2023},  // vira o ano
		{time.September, 2024}, // começa no domingo
	}
	for _, c := range casos {
		grade := GerarGrade(ref, c.mes, c.ano, nil)
		assert.Len(t, grade, 42, "mês %v/%d", c.mes, c.ano)
	}
}

func TestGerarGradeAlinhamentoMarco2024(t *testing.T) {
	grade := GerarGrade(ref, time.March, 2024, nil)
	require.Len(t, grade, 42)

	// 1º de março de 2024 é sexta (coluna 5); antes vêm 25 a 29 de fevereiro
	assert.Equal(t, dia(2024, time.February, 25), grade[0].Data)
	assert.False(t, grade[0].MesExibido)
	assert.Equal(t, dia(2024, time.March, 1), grade[5].Data)
	assert.True(t, grade[5].MesExibido)

	// 36 células até o fim de março; abril completa a grade
	assert.Equal(t, dia(2024, time.March, 31), grade[35].Data)
	assert.Equal(t, dia(2024, time.April, 1), grade[36].Data)
	assert.False(t, grade[36].MesExibido)
	assert.Equal(t, dia(2024, time.April, 6), grade[41].Data)
}

func TestGerarGradeFlagsHojeEFuturo(t *testing.T) {
	grade := GerarGrade(ref, time.March, 2024, nil)

	for _, c := range grade {
		esperadoHoje := c.Data.Equal(dia(2024, time.March, 15))
		esperadoFuturo := c.Data.After(dia(2024, time.March, 15))
		assert.Equal(t, esperadoHoje, c.Hoje, "hoje em %v", c.Data)
		assert.Equal(t, esperadoFuturo, c.Futuro, "futuro em %v", c.Data)
	}

	// 15 de março é a célula de índice 5+14
	assert.True(t, grade[19].Hoje)
	// 16 a 31 de março são futuros
	for i := 20; i <= 35; i++ {
		assert.True(t, grade[i].Futuro, "célula %d", i)
	}
}

func TestGerarGradeAssociaRegistroPorData(t *testing.T) {
	registros := []liquidacao.LiquidacaoDiaria{
		{
			ID: 7,
			// hora de abertura não interfere na associação
			DataAbertura: time.Date(2024, time.March, 10, 9, 30, 0, 0, time.UTC),
			Status:       liquidacao.StatusFechado,
		},
	}
	grade := GerarGrade(ref, time.March, 2024, registros)

	celula10 := grade[14]
	require.Equal(t, dia(2024, time.March, 10), celula10.Data)
	require.NotNil(t, celula10.Liquidacao)
	assert.Equal(t, uint(7), celula10.Liquidacao.ID)
	assert.Equal(t, ClasseFechada, celula10.Classe)

	// dias sem registro ficam sem liquidação
	for i, c := range grade {
		if i == 14 {
			continue
		}
		assert.Nil(t, c.Liquidacao, "célula %d", i)
	}
}

func TestClassesPorStatus(t *testing.T) {
	registros := []liquidacao.LiquidacaoDiaria{
		{ID: 1, DataAbertura: dia(2024, time.March, 10), Status: liquidacao.StatusFechado},
		{ID: 2, DataAbertura: dia(2024, time.March, 11), Status: liquidacao.StatusAprovado},
		{ID: 3, DataAbertura: dia(2024, time.March, 12), Status: liquidacao.StatusReaberto},
		{ID: 4, DataAbertura: dia(2024, time.March, 15), Status: liquidacao.StatusAberto},
	}
	grade := GerarGrade(ref, time.March, 2024, registros)

	assert.Equal(t, ClasseFechada, grade[14].Classe)  // 10/03
	assert.Equal(t, ClasseAprovada, grade[15].Classe) // 11/03
	assert.Equal(t, ClasseAberta, grade[16].Classe)   // 12/03 reaberta
	assert.Equal(t, ClasseAberta, grade[19].Classe)   // 15/03 aberta

	// dia do mês sem registro, não futuro
	assert.Equal(t, ClasseSemRegistro, grade[18].Classe) // 14/03
	// dia futuro e dia fora do mês ficam neutros
	assert.Equal(t, ClasseNeutra, grade[20].Classe) // 16/03
	assert.Equal(t, ClasseNeutra, grade[0].Classe)  // 25/02
}

func TestAcaoDoDia(t *testing.T) {
	aberta := liquidacao.LiquidacaoDiaria{ID: 1, Status: liquidacao.StatusAberto}

	casos := []struct {
		nome         string
		celula       DiaCalendario
		existeAberta bool
		esperado     Acao
	}{
		{"fora do mês é inerte", DiaCalendario{MesExibido: false}, false, AcaoNenhuma},
		{"futuro é inerte", DiaCalendario{MesExibido: true, Futuro: true}, false, AcaoNenhuma},
		{"dia com registro visualiza", DiaCalendario{MesExibido: true, Liquidacao: &aberta}, true, AcaoVerLiquidacao},
		{"hoje sem registro e sem aberta abre o dia", DiaCalendario{MesExibido: true, Hoje: true}, false, AcaoAbrirDia},
		{"hoje com outra aberta vira dia vazio", DiaCalendario{MesExibido: true, Hoje: true}, true, AcaoVerDiaVazio},
		{"dia passado sem registro vira dia vazio", DiaCalendario{MesExibido: true}, false, AcaoVerDiaVazio},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			assert.Equal(t, c.esperado, AcaoDoDia(c.celula, c.existeAberta))
		})
	}
}

func TestNavegacaoDeMes(t *testing.T) {
	// avançar a partir do mês corrente é no-op
	mes, ano := ProximoMes(time.March, 2024, ref)
	assert.Equal(t, time.March, mes)
	assert.Equal(t, 2024, ano)

	// avançar de um mês passado é permitido
	mes, ano = ProximoMes(time.January, 2024, ref)
	assert.Equal(t, time.February, mes)
	assert.Equal(t, 2024, ano)

	// dezembro passado rola o ano para frente
	mes, ano = ProximoMes(time.December, 2023, ref)
	assert.Equal(t, time.January, mes)
	assert.Equal(t, 2024, ano)

	// recuar sempre é permitido e rola o ano
	mes, ano = MesAnterior(time.January, 2024)
	assert.Equal(t, time.December, mes)
	assert.Equal(t, 2023, ano)

	mes, ano = MesAnterior(time.March, 2024)
	assert.Equal(t, time.February, mes)
	assert.Equal(t, 2024, ano)
}
