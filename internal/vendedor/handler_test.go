package vendedor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/CobraFacil/api-vendedor/internal/auth"
	"github.com/CobraFacil/api-vendedor/internal/utils"
)

type fakeRepo struct {
	vendedor *Vendedor
}

func (f *fakeRepo) BuscarPorCodigoAcesso(db *gorm.DB, codigo string) (*Vendedor, error) {
	if f.vendedor != nil && f.vendedor.CodigoAcesso == codigo {
		return f.vendedor, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) BuscarPorID(db *gorm.DB, id uint) (*Vendedor, error) {
	if f.vendedor != nil && f.vendedor.ID == id {
		return f.vendedor, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) Salvar(db *gorm.DB, v *Vendedor) error             { return nil }
func (f *fakeRepo) Atualizar(db *gorm.DB, id uint, v *Vendedor) error { return nil }

type fakeSessoes struct {
	sessoes map[uint]VendedorAuth
}

func newFakeSessoes() *fakeSessoes {
	return &fakeSessoes{sessoes: make(map[uint]VendedorAuth)}
}

func (f *fakeSessoes) Salvar(ctx context.Context, auth VendedorAuth) error {
	f.sessoes[auth.VendedorID] = auth
	return nil
}

func (f *fakeSessoes) Carregar(ctx context.Context, vendedorID uint) (*VendedorAuth, error) {
	if s, ok := f.sessoes[vendedorID]; ok {
		return &s, nil
	}
	return nil, nil
}

func (f *fakeSessoes) Limpar(ctx context.Context, vendedorID uint) error {
	delete(f.sessoes, vendedorID)
	return nil
}

func novoHandlerTeste(t *testing.T) (*Handler, *fakeSessoes) {
	t.Helper()
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	hash, err := utils.HashSenha("senha123")
	require.NoError(t, err)

	repo := &fakeRepo{vendedor: &Vendedor{
		ID:           42,
		Nome:         "Carlos",
		CodigoAcesso: "1234",
		Senha:        hash,
		EmpresaID:    1,
		RotaID:       7,
		RotaNome:     "Rota Centro",
		Ativo:        true,
	}}
	sessoes := newFakeSessoes()
	return &Handler{Repository: repo, Sessoes: sessoes}, sessoes
}

func TestLoginComSucesso(t *testing.T) {
	h, sessoes := novoHandlerTeste(t)

	r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"codigoAcesso":"1234","senha":"senha123"}`))
	w := httptest.NewRecorder()
	h.Login(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var resp LoginResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, uint(42), resp.Vendedor.VendedorID)
	assert.Equal(t, uint(7), resp.Vendedor.RotaID)
	assert.Equal(t, "Rota Centro", resp.Vendedor.RotaNome)
	assert.NotEmpty(t, resp.Vendedor.SessaoID)

	// sessão persistida no sign-in
	gravada, err := sessoes.Carregar(r.Context(), 42)
	require.NoError(t, err)
	require.NotNil(t, gravada)

	// token carrega vendedor e rota
	claims, err := auth.ValidarToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.VendedorID)
	assert.Equal(t, uint(7), claims.RotaID)
}

func TestLoginComCodigoNaoNumerico(t *testing.T) {
	h, sessoes := novoHandlerTeste(t)

	// validação local: nada de banco nem de sessão
	r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"codigoAcesso":"abc12","senha":"senha123"}`))
	w := httptest.NewRecorder()
	h.Login(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "numérico")
	assert.Empty(t, sessoes.sessoes)
}

func TestLoginComSenhaIncorreta(t *testing.T) {
	h, sessoes := novoHandlerTeste(t)

	r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"codigoAcesso":"1234","senha":"errada"}`))
	w := httptest.NewRecorder()
	h.Login(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, sessoes.sessoes)
}

func TestLoginComCodigoDesconhecido(t *testing.T) {
	h, _ := novoHandlerTeste(t)

	r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"codigoAcesso":"9999","senha":"senha123"}`))
	w := httptest.NewRecorder()
	h.Login(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutLimpaSessao(t *testing.T) {
	h, sessoes := novoHandlerTeste(t)
	sessoes.sessoes[42] = VendedorAuth{VendedorID: 42}

	r := httptest.NewRequest(http.MethodPost, "/logout", nil)
	ctx := context.WithValue(r.Context(), auth.VendedorIDKey, uint(42))
	w := httptest.NewRecorder()
	h.Logout(w, r.WithContext(ctx))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, sessoes.sessoes)
}

func TestSessaoRestauraSemNovaAutenticacao(t *testing.T) {
	h, sessoes := novoHandlerTeste(t)
	sessoes.sessoes[42] = VendedorAuth{VendedorID: 42, RotaID: 7, RotaNome: "Rota Centro"}

	r := httptest.NewRequest(http.MethodGet, "/sessao", nil)
	ctx := context.WithValue(r.Context(), auth.VendedorIDKey, uint(42))
	w := httptest.NewRecorder()
	h.Sessao(w, r.WithContext(ctx))

	require.Equal(t, http.StatusOK, w.Code)
	var resp VendedorAuth
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, uint(7), resp.RotaID)
}
