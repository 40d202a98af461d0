package vendedor

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/CobraFacil/api-vendedor/internal/auth"
	"github.com/CobraFacil/api-vendedor/internal/utils"
)

// Sessoes é a persistência da sessão corrente (implementada em internal/sessao).
type Sessoes interface {
	Salvar(ctx context.Context, auth VendedorAuth) error
	Carregar(ctx context.Context, vendedorID uint) (*VendedorAuth, error)
	Limpar(ctx context.Context, vendedorID uint) error
}

// Handler encapsula DB, repository e o store de sessão.
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Sessoes    Sessoes
}

// NewHandler retorna um handler inicializado.
func NewHandler(db *gorm.DB, sessoes Sessoes) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Sessoes:    sessoes,
	}
}

// Login autentica por código de acesso numérico + senha, gera o JWT e grava a
// sessão. A validação do código acontece antes de qualquer ida ao banco.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	if _, err := strconv.ParseUint(req.CodigoAcesso, 10, 64); err != nil {
		http.Error(w, "código de acesso deve ser numérico", http.StatusBadRequest)
		return
	}

	user, err := h.Repository.BuscarPorCodigoAcesso(h.DB, req.CodigoAcesso)
	if err != nil {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}

	if !utils.VerificarSenha(user.Senha, req.Senha) {
		http.Error(w, "senha incorreta", http.StatusUnauthorized)
		return
	}

	token, err := auth.GerarToken(user.ID, user.RotaID)
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	sessao := VendedorAuth{
		SessaoID:   uuid.NewString(),
		VendedorID: user.ID,
		Nome:       user.Nome,
		EmpresaID:  user.EmpresaID,
		RotaID:     user.RotaID,
		RotaNome:   user.RotaNome,
		CriadoEm:   time.Now(),
	}
	if err := h.Sessoes.Salvar(r.Context(), sessao); err != nil {
		http.Error(w, "erro ao gravar sessão", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(LoginResponse{Token: token, Vendedor: sessao})
}

// Logout limpa a sessão persistida do vendedor autenticado.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	vendedorID, ok := auth.VendedorDoContexto(r.Context())
	if !ok {
		http.Error(w, "sessão não identificada", http.StatusUnauthorized)
		return
	}

	if err := h.Sessoes.Limpar(r.Context(), vendedorID); err != nil {
		http.Error(w, "erro ao encerrar sessão", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Perfil retorna os dados do vendedor autenticado.
func (h *Handler) Perfil(w http.ResponseWriter, r *http.Request) {
	vendedorID, ok := auth.VendedorDoContexto(r.Context())
	if !ok {
		http.Error(w, "sessão não identificada", http.StatusUnauthorized)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, vendedorID)
	if err != nil {
		http.Error(w, "vendedor não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(obj)
}

// Sessao devolve a sessão persistida, permitindo ao app restaurar o estado
// sem nova autenticação.
func (h *Handler) Sessao(w http.ResponseWriter, r *http.Request) {
	vendedorID, ok := auth.VendedorDoContexto(r.Context())
	if !ok {
		http.Error(w, "sessão não identificada", http.StatusUnauthorized)
		return
	}

	sessao, err := h.Sessoes.Carregar(r.Context(), vendedorID)
	if err != nil {
		http.Error(w, "erro ao carregar sessão", http.StatusInternalServerError)
		return
	}
	if sessao == nil {
		http.Error(w, "sessão não encontrada", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(sessao)
}
