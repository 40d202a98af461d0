package clienterota

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CobraFacil/api-vendedor/internal/auth"
)

type fakeVisitas struct {
	itens []ClienteRotaDia

	pagamentoChamado bool
	pagamentoErr     error
	ultimoValor      decimal.Decimal
}

func (f *fakeVisitas) ListarPorRotaEData(rotaID uint, data time.Time) ([]ClienteRotaDia, error) {
	return f.itens, nil
}

func (f *fakeVisitas) RegistrarPagamento(parcelaID uint, valor decimal.Decimal, forma, observacoes string) error {
	f.pagamentoChamado = true
	f.ultimoValor = valor
	return f.pagamentoErr
}

func reqAutenticada(method, target string, body io.Reader) *http.Request {
	r := httptest.NewRequest(method, target, body)
	ctx := context.WithValue(r.Context(), auth.VendedorIDKey, uint(1))
	ctx = context.WithValue(ctx, auth.RotaIDKey, uint(10))
	return r.WithContext(ctx)
}

func TestListarDiaComBuscaEStatus(t *testing.T) {
	fake := &fakeVisitas{itens: []ClienteRotaDia{
		{ClienteID: 1, NomeCliente: "Maria Souza", StatusDia: StatusPago},
		{ClienteID: 2, NomeCliente: "João Pereira", StatusDia: StatusPendente},
	}}
	h := NewHandler(fake)

	r := reqAutenticada(http.MethodGet, "/clientes-do-dia?busca=maria", nil)
	w := httptest.NewRecorder()
	h.ListarDia(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var itens []ClienteRotaDia
	require.NoError(t, json.NewDecoder(w.Body).Decode(&itens))
	require.Len(t, itens, 1)
	assert.Equal(t, uint(1), itens[0].ClienteID)
}

func TestRegistrarPagamentoValidaAntesDoRemoto(t *testing.T) {
	casos := []struct {
		nome string
		body string
	}{
		{"valor zero", `{"parcelaId":10,"valor":"0"}`},
		{"valor negativo", `{"parcelaId":10,"valor":"-5"}`},
		{"parcela ausente", `{"valor":"50"}`},
		{"payload mal formado", `{`},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			fake := &fakeVisitas{}
			h := NewHandler(fake)

			r := reqAutenticada(http.MethodPost, "/pagamentos", strings.NewReader(c.body))
			w := httptest.NewRecorder()
			h.RegistrarPagamento(w, r)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, fake.pagamentoChamado, "remoto não deveria ser chamado")
		})
	}
}

func TestRegistrarPagamentoComSucesso(t *testing.T) {
	fake := &fakeVisitas{}
	h := NewHandler(fake)

	r := reqAutenticada(http.MethodPost, "/pagamentos", strings.NewReader(`{"parcelaId":10,"valor":"35.50","forma":"PIX"}`))
	w := httptest.NewRecorder()
	h.RegistrarPagamento(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, fake.pagamentoChamado)
	assert.True(t, decimal.NewFromFloat(35.50).Equal(fake.ultimoValor))
}

func TestRegistrarPagamentoRepassaMensagemRemota(t *testing.T) {
	fake := &fakeVisitas{pagamentoErr: errors.New("parcela já quitada")}
	h := NewHandler(fake)

	r := reqAutenticada(http.MethodPost, "/pagamentos", strings.NewReader(`{"parcelaId":10,"valor":"50"}`))
	w := httptest.NewRecorder()
	h.RegistrarPagamento(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "parcela já quitada")
}
