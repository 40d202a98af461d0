package auth

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const (
	VendedorIDKey ctxKey = "vendedorID"
	RotaIDKey     ctxKey = "rotaID"
)

// MiddlewareAutenticacao valida o Bearer token e injeta vendedor e rota no
// contexto da requisição.
func MiddlewareAutenticacao(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			http.Error(w, "Token ausente", http.StatusUnauthorized)
			return
		}
		raw := strings.TrimPrefix(h, "Bearer ")
		claims, err := ValidarToken(raw)
		if err != nil {
			http.Error(w, "Token inválido", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), VendedorIDKey, claims.VendedorID)
		ctx = context.WithValue(ctx, RotaIDKey, claims.RotaID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// VendedorDoContexto extrai o vendedor autenticado do contexto.
func VendedorDoContexto(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(VendedorIDKey).(uint)
	return id, ok
}

// RotaDoContexto extrai a rota vinculada ao vendedor autenticado.
func RotaDoContexto(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(RotaIDKey).(uint)
	return id, ok
}
