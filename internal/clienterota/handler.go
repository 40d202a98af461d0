package clienterota

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/CobraFacil/api-vendedor/internal/auth"
)

// Visitas é o que o handler precisa do repositório; um fake serve nos testes.
type Visitas interface {
	ListarPorRotaEData(rotaID uint, data time.Time) ([]ClienteRotaDia, error)
	RegistrarPagamento(parcelaID uint, valor decimal.Decimal, forma, observacoes string) error
}

// Handler expõe a lista do dia e o registro de pagamentos.
type Handler struct {
	Visitas Visitas
}

// NewHandler retorna um handler inicializado.
func NewHandler(visitas Visitas) *Handler {
	return &Handler{Visitas: visitas}
}

// DTO usado no POST /pagamentos
type PagamentoRequest struct {
	ParcelaID   uint            `json:"parcelaId"`
	Valor       decimal.Decimal `json:"valor"`
	Forma       string          `json:"forma"`
	Observacoes string          `json:"observacoes"`
}

// GET /clientes-do-dia?busca=&status=
func (h *Handler) ListarDia(w http.ResponseWriter, r *http.Request) {
	rotaID, ok := auth.RotaDoContexto(r.Context())
	if !ok {
		http.Error(w, "rota não identificada", http.StatusUnauthorized)
		return
	}

	itens, err := h.Visitas.ListarPorRotaEData(rotaID, time.Now())
	if err != nil {
		http.Error(w, "erro ao buscar clientes do dia", http.StatusInternalServerError)
		return
	}

	q := r.URL.Query()
	itens = Filtrar(itens, q.Get("busca"), q.Get("status"))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(itens)
}

// POST /pagamentos
//
// Valida localmente antes de qualquer chamada remota; uma rejeição remota
// volta com a mensagem do servidor e nada muda por aqui.
func (h *Handler) RegistrarPagamento(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.RotaDoContexto(r.Context()); !ok {
		http.Error(w, "rota não identificada", http.StatusUnauthorized)
		return
	}

	var req PagamentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.ParcelaID == 0 {
		http.Error(w, "parcela não informada", http.StatusBadRequest)
		return
	}
	if !req.Valor.GreaterThan(decimal.Zero) {
		http.Error(w, "valor do pagamento deve ser maior que zero", http.StatusBadRequest)
		return
	}
	if req.Forma == "" {
		req.Forma = "DINHEIRO"
	}

	if err := h.Visitas.RegistrarPagamento(req.ParcelaID, req.Valor, req.Forma, req.Observacoes); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write([]byte(`{"message":"Pagamento registrado com sucesso"}`))
}
