package calendario

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/CobraFacil/api-vendedor/internal/auth"
	"github.com/CobraFacil/api-vendedor/internal/liquidacao"
)

// Handler serve a grade mensal da rota autenticada.
type Handler struct {
	Ledger liquidacao.Ledger
	Janela time.Duration
}

// NewHandler retorna um handler inicializado.
func NewHandler(ledger liquidacao.Ledger, janela time.Duration) *Handler {
	return &Handler{Ledger: ledger, Janela: janela}
}

// GradeResponse é a grade do mês mais a ação sugerida por célula.
type GradeResponse struct {
	Mes   time.Month      `json:"mes"`
	Ano   int             `json:"ano"`
	Dias  []DiaCalendario `json:"dias"`
	Acoes []Acao          `json:"acoes"`
}

// GET /calendario?mes=&ano=
//
// Sem parâmetros exibe o mês corrente. Pedir um mês além do corrente é
// tratado como no-op de navegação: a resposta volta clampada ao mês corrente.
func (h *Handler) Grade(w http.ResponseWriter, r *http.Request) {
	rotaID, ok := auth.RotaDoContexto(r.Context())
	if !ok {
		http.Error(w, "rota não identificada", http.StatusUnauthorized)
		return
	}

	hoje := time.Now()
	mes := hoje.Month()
	ano := hoje.Year()

	if v := r.URL.Query().Get("mes"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 12 {
			http.Error(w, "mês inválido", http.StatusBadRequest)
			return
		}
		mes = time.Month(n)
	}
	if v := r.URL.Query().Get("ano"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "ano inválido", http.StatusBadRequest)
			return
		}
		ano = n
	}

	// navegação nunca passa do mês corrente
	if ano > hoje.Year() || (ano == hoje.Year() && mes > hoje.Month()) {
		mes = hoje.Month()
		ano = hoje.Year()
	}

	desde := liquidacao.NormalizarData(hoje.Add(-h.Janela))
	registros, err := h.Ledger.ListarPorRota(rotaID, desde)
	if err != nil {
		http.Error(w, "erro ao buscar liquidações", http.StatusInternalServerError)
		return
	}

	dias := GerarGrade(hoje, mes, ano, registros)
	existeAberta := liquidacao.EmAbertoNaJanela(registros) != nil

	acoes := make([]Acao, len(dias))
	for i, d := range dias {
		acoes[i] = AcaoDoDia(d, existeAberta)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(GradeResponse{Mes: mes, Ano: ano, Dias: dias, Acoes: acoes})
}
