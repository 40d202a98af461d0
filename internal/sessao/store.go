package sessao

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/CobraFacil/api-vendedor/internal/vendedor"
)

// Store persiste a sessão corrente de cada vendedor em Redis. Uma sessão por
// vendedor: o login sobrescreve, o logout apaga. Sem TTL — a sessão vive até
// o sign-out.
type Store struct {
	client *redis.Client
}

// NewStore conecta ao Redis do endereço informado.
func NewStore(addr, pass string, db int) *Store {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: pass,
		DB:       db,
	})
	return &Store{client: rdb}
}

// NewStoreComCliente injeta um cliente já construído (testes usam miniredis).
func NewStoreComCliente(client *redis.Client) *Store {
	return &Store{client: client}
}

func chave(vendedorID uint) string {
	return fmt.Sprintf("sessao:vendedor:%d", vendedorID)
}

// Salvar grava (ou sobrescreve) a sessão do vendedor.
func (s *Store) Salvar(ctx context.Context, auth vendedor.VendedorAuth) error {
	payload, err := json.Marshal(auth)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, chave(auth.VendedorID), payload, 0).Err()
}

// Carregar devolve a sessão do vendedor, ou nil quando não há sessão ativa.
func (s *Store) Carregar(ctx context.Context, vendedorID uint) (*vendedor.VendedorAuth, error) {
	raw, err := s.client.Get(ctx, chave(vendedorID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var auth vendedor.VendedorAuth
	if err := json.Unmarshal([]byte(raw), &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

// Limpar remove a sessão do vendedor.
func (s *Store) Limpar(ctx context.Context, vendedorID uint) error {
	return s.client.Del(ctx, chave(vendedorID)).Err()
}
