package calendario

import (
	"time"

	"github.com/CobraFacil/api-vendedor/internal/liquidacao"
)

// Classes visuais das células do calendário. Dias futuros e dias fora do mês
// exibido ficam neutros (classe vazia).
const (
	ClasseAberta      = "aberta"
	ClasseFechada     = "fechada"
	ClasseAprovada    = "aprovada"
	ClasseSemRegistro = "sem-registro"
	ClasseNeutra      = ""
)

// DiaCalendario é uma célula da grade mensal. Derivado e efêmero: recalculado
// a cada consulta, nunca persistido.
type DiaCalendario struct {
	Data       time.Time                    `json:"data"`
	Dia        int                          `json:"dia"`
	MesExibido bool                         `json:"mesExibido"`
	Hoje       bool                         `json:"hoje"`
	Futuro     bool                         `json:"futuro"`
	Liquidacao *liquidacao.LiquidacaoDiaria `json:"liquidacao"`
	Classe     string                       `json:"classe"`
}

// Acao é o contrato de interação de uma célula com a camada de apresentação.
type Acao string

const (
	AcaoNenhuma       Acao = "NENHUMA"
	AcaoAbrirDia      Acao = "ABRIR_DIA"
	AcaoVerLiquidacao Acao = "VER_LIQUIDACAO"
	AcaoVerDiaVazio   Acao = "VER_DIA_VAZIO"
)

// GerarGrade monta a grade fixa de 6x7 células do mês exibido, com dias dos
// meses vizinhos preenchendo o início e o fim da grade.
//
// A associação registro→dia compara apenas a data de calendário (hora zerada).
// Havendo mais de um registro na mesma data — situação que a invariante de
// unicidade do remoto não deveria permitir — vale o primeiro na ordem de
// entrada; comportamento não especificado, não contrato.
func GerarGrade(hoje time.Time, mes time.Month, ano int, registros []liquidacao.LiquidacaoDiaria) []DiaCalendario {
	hojeNorm := liquidacao.NormalizarData(hoje)
	primeiro := time.Date(ano, mes, 1, 0, 0, 0, 0, hoje.Location())
	grade := make([]DiaCalendario, 0, 42)

	// dias finais do mês anterior, até alinhar o dia 1 na coluna certa
	desloc := int(primeiro.Weekday())
	for i := desloc; i > 0; i-- {
		data := primeiro.AddDate(0, 0, -i)
		grade = append(grade, celulaForaDoMes(data, hojeNorm))
	}

	// dias do mês exibido
	ultimoDia := primeiro.AddDate(0, 1, -1).Day()
	for dia := 1; dia <= ultimoDia; dia++ {
		data := time.Date(ano, mes, dia, 0, 0, 0, 0, hoje.Location())
		c := DiaCalendario{
			Data:       data,
			Dia:        dia,
			MesExibido: true,
			Hoje:       data.Equal(hojeNorm),
			Futuro:     data.After(hojeNorm),
			Liquidacao: registroDoDia(registros, data),
		}
		c.Classe = classeDoDia(c)
		grade = append(grade, c)
	}

	// dias iniciais do mês seguinte, até completar as 42 células
	for dia := 1; len(grade) < 42; dia++ {
		data := primeiro.AddDate(0, 1, dia-1)
		grade = append(grade, celulaForaDoMes(data, hojeNorm))
	}

	return grade
}

func celulaForaDoMes(data, hojeNorm time.Time) DiaCalendario {
	return DiaCalendario{
		Data:       data,
		Dia:        data.Day(),
		MesExibido: false,
		Hoje:       data.Equal(hojeNorm),
		Futuro:     data.After(hojeNorm),
		Classe:     ClasseNeutra,
	}
}

func registroDoDia(registros []liquidacao.LiquidacaoDiaria, data time.Time) *liquidacao.LiquidacaoDiaria {
	for i := range registros {
		if liquidacao.MesmaData(registros[i].DataAbertura, data) {
			return &registros[i]
		}
	}
	return nil
}

func classeDoDia(c DiaCalendario) string {
	if c.Liquidacao != nil {
		switch c.Liquidacao.Status {
		case liquidacao.StatusAberto, liquidacao.StatusReaberto:
			return ClasseAberta
		case liquidacao.StatusFechado:
			return ClasseFechada
		case liquidacao.StatusAprovado:
			return ClasseAprovada
		}
	}
	if c.MesExibido && !c.Futuro {
		return ClasseSemRegistro
	}
	return ClasseNeutra
}

// AcaoDoDia aplica a política de toque:
//   - fora do mês exibido ou futuro: inerte;
//   - dia com liquidação: visualizar;
//   - hoje, sem liquidação e sem outra aberta na rota: abrir o dia;
//   - demais dias do mês: visualizar dia vazio.
func AcaoDoDia(c DiaCalendario, existeAbertaNaRota bool) Acao {
	if !c.MesExibido || c.Futuro {
		return AcaoNenhuma
	}
	if c.Liquidacao != nil {
		return AcaoVerLiquidacao
	}
	if c.Hoje && !existeAbertaNaRota {
		return AcaoAbrirDia
	}
	return AcaoVerDiaVazio
}

// MesAnterior recua um mês, rolando o ano quando preciso. Sempre permitido.
func MesAnterior(mes time.Month, ano int) (time.Month, int) {
	if mes == time.January {
		return time.December, ano - 1
	}
	return mes - 1, ano
}

// ProximoMes avança um mês, mas nunca além do mês da data de referência:
// tentar avançar a partir do mês corrente é um no-op.
func ProximoMes(mes time.Month, ano int, referencia time.Time) (time.Month, int) {
	if ano > referencia.Year() || (ano == referencia.Year() && mes >= referencia.Month()) {
		return mes, ano
	}
	if mes == time.December {
		return time.January, ano + 1
	}
	return mes + 1, ano
}
