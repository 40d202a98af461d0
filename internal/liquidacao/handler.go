package liquidacao

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/CobraFacil/api-vendedor/internal/auth"
)

// ContadorDia fornece a contagem de parcelas pagas e não pagas de um dia,
// usada no cálculo de eficácia do resumo.
type ContadorDia interface {
	ContarPagamentos(rotaID uint, data time.Time) (pagos, naoPagos int, err error)
}

// Handler expõe o fluxo de liquidação sobre HTTP.
type Handler struct {
	Ledger   Ledger
	Contador ContadorDia
	Janela   time.Duration
}

// NewHandler retorna um handler inicializado.
func NewHandler(ledger Ledger, contador ContadorDia, janela time.Duration) *Handler {
	return &Handler{Ledger: ledger, Contador: contador, Janela: janela}
}

// DTO usado no POST /liquidacoes/abrir
type AbrirRequest struct {
	CaixaInicial decimal.Decimal `json:"caixaInicial"`
	Latitude     *float64        `json:"latitude"`
	Longitude    *float64        `json:"longitude"`
}

// DTO usado no POST /liquidacoes/{id}/fechar
type FecharRequest struct {
	Observacoes string `json:"observacoes"`
}

// PainelResponse é o estado de tela mais a permissão de fechamento.
type PainelResponse struct {
	Estado
	PodeFechar bool `json:"podeFechar"`
}

// ResumoResponse agrega os derivados do registro em foco.
type ResumoResponse struct {
	Liquidacao    *LiquidacaoDiaria `json:"liquidacao"`
	TotalClientes int               `json:"totalClientes"`
	CaixaAtual    decimal.Decimal   `json:"caixaAtual"`
	Eficacia      float64           `json:"eficacia"`
	Progresso     float64           `json:"progresso"`
}

func (h *Handler) janelaDesde(hoje time.Time) time.Time {
	return NormalizarData(hoje.Add(-h.Janela))
}

// GET /liquidacoes
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	rotaID, ok := auth.RotaDoContexto(r.Context())
	if !ok {
		http.Error(w, "rota não identificada", http.StatusUnauthorized)
		return
	}

	registros, err := h.Ledger.ListarPorRota(rotaID, h.janelaDesde(time.Now()))
	if err != nil {
		http.Error(w, "erro ao buscar liquidações", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(registros)
}

// GET /liquidacoes/painel?data=2006-01-02
//
// Sem parâmetro, deriva o estado inicial da janela (painel vivo quando há
// exatamente uma liquidação aberta). Com ?data=, foca o dia informado como
// seleção de calendário.
func (h *Handler) Painel(w http.ResponseWriter, r *http.Request) {
	rotaID, ok := auth.RotaDoContexto(r.Context())
	if !ok {
		http.Error(w, "rota não identificada", http.StatusUnauthorized)
		return
	}

	hoje := time.Now()
	registros, err := h.Ledger.ListarPorRota(rotaID, h.janelaDesde(hoje))
	if err != nil {
		http.Error(w, "erro ao buscar liquidações", http.StatusInternalServerError)
		return
	}

	var estado Estado
	if param := r.URL.Query().Get("data"); param != "" {
		data, err := time.ParseInLocation("2006-01-02", param, hoje.Location())
		if err != nil {
			http.Error(w, "data inválida, use AAAA-MM-DD", http.StatusBadRequest)
			return
		}
		estado = SelecionarDia(registroDoDia(registros, data), data)
	} else {
		estado = EstadoInicial(registros, hoje)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(PainelResponse{Estado: estado, PodeFechar: PodeFecharDia(estado)})
}

// registroDoDia devolve o primeiro registro da janela com a mesma data de
// calendário. Colisões de data não deveriam ocorrer; a ordem de entrada
// decide, sem garantia de contrato.
func registroDoDia(registros []LiquidacaoDiaria, data time.Time) *LiquidacaoDiaria {
	for i := range registros {
		if MesmaData(registros[i].DataAbertura, data) {
			return &registros[i]
		}
	}
	return nil
}

// POST /liquidacoes/abrir
func (h *Handler) Abrir(w http.ResponseWriter, r *http.Request) {
	vendedorID, okV := auth.VendedorDoContexto(r.Context())
	rotaID, okR := auth.RotaDoContexto(r.Context())
	if !okV || !okR {
		http.Error(w, "sessão não identificada", http.StatusUnauthorized)
		return
	}

	var req AbrirRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.CaixaInicial.IsNegative() {
		http.Error(w, "caixa inicial não pode ser negativo", http.StatusBadRequest)
		return
	}

	hoje := time.Now()
	registros, err := h.Ledger.ListarPorRota(rotaID, h.janelaDesde(hoje))
	if err != nil {
		http.Error(w, "erro ao buscar liquidações", http.StatusInternalServerError)
		return
	}
	// pré-condição local; o remoto continua sendo a autoridade final
	if err := PodeAbrirDia(registros); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	var geo *Geolocalizacao
	if req.Latitude != nil && req.Longitude != nil {
		geo = &Geolocalizacao{Latitude: *req.Latitude, Longitude: *req.Longitude}
	}

	if _, err := h.Ledger.AbrirDia(vendedorID, rotaID, req.CaixaInicial, geo); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// rebusca a janela inteira; nada de patch incremental
	registros, err = h.Ledger.ListarPorRota(rotaID, h.janelaDesde(hoje))
	if err != nil {
		http.Error(w, "erro ao buscar liquidações", http.StatusInternalServerError)
		return
	}
	estado := EstadoInicial(registros, hoje)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(PainelResponse{Estado: estado, PodeFechar: PodeFecharDia(estado)})
}

// POST /liquidacoes/{id}/fechar
func (h *Handler) Fechar(w http.ResponseWriter, r *http.Request) {
	rotaID, ok := auth.RotaDoContexto(r.Context())
	if !ok {
		http.Error(w, "rota não identificada", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID da liquidação inválido", http.StatusBadRequest)
		return
	}

	var req FecharRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	registro, err := h.Ledger.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "liquidação não encontrada", http.StatusNotFound)
		return
	}
	if registro.RotaID != rotaID {
		http.Error(w, "liquidação de outra rota", http.StatusForbidden)
		return
	}
	if !registro.EmAberto() {
		http.Error(w, "apenas liquidações abertas podem ser fechadas", http.StatusBadRequest)
		return
	}

	if _, err := h.Ledger.FecharDia(uint(id), req.Observacoes); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	hoje := time.Now()
	registros, err := h.Ledger.ListarPorRota(rotaID, h.janelaDesde(hoje))
	if err != nil {
		http.Error(w, "erro ao buscar liquidações", http.StatusInternalServerError)
		return
	}
	estado := EstadoInicial(registros, hoje)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(PainelResponse{Estado: estado, PodeFechar: PodeFecharDia(estado)})
}

// GET /liquidacoes/{id}/resumo
func (h *Handler) Resumo(w http.ResponseWriter, r *http.Request) {
	rotaID, ok := auth.RotaDoContexto(r.Context())
	if !ok {
		http.Error(w, "rota não identificada", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID da liquidação inválido", http.StatusBadRequest)
		return
	}

	registro, err := h.Ledger.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "liquidação não encontrada", http.StatusNotFound)
		return
	}
	if registro.RotaID != rotaID {
		http.Error(w, "liquidação de outra rota", http.StatusForbidden)
		return
	}

	var pagos, naoPagos int
	if h.Contador != nil {
		pagos, naoPagos, err = h.Contador.ContarPagamentos(rotaID, registro.DataAbertura)
		if err != nil {
			http.Error(w, "erro ao contar pagamentos do dia", http.StatusInternalServerError)
			return
		}
	}

	resp := ResumoResponse{
		Liquidacao:    registro,
		TotalClientes: TotalClientes(registro),
		CaixaAtual:    CaixaAtual(registro),
		Eficacia:      Eficacia(pagos, naoPagos),
		Progresso:     Progresso(registro.ValorRecebidoDia, registro.ValorEsperadoDia),
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// GET /saldo
func (h *Handler) Saldo(w http.ResponseWriter, r *http.Request) {
	rotaID, ok := auth.RotaDoContexto(r.Context())
	if !ok {
		http.Error(w, "rota não identificada", http.StatusUnauthorized)
		return
	}

	saldo, err := h.Ledger.SaldoConta(rotaID)
	if err != nil {
		http.Error(w, "erro ao buscar saldo", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]decimal.Decimal{"saldo": saldo})
}
