package main

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/CobraFacil/api-vendedor/internal/auth"
	"github.com/CobraFacil/api-vendedor/internal/calendario"
	"github.com/CobraFacil/api-vendedor/internal/clienterota"
	"github.com/CobraFacil/api-vendedor/internal/config"
	"github.com/CobraFacil/api-vendedor/internal/liquidacao"
	"github.com/CobraFacil/api-vendedor/internal/middleware"
	"github.com/CobraFacil/api-vendedor/internal/sessao"
	"github.com/CobraFacil/api-vendedor/internal/utils/db"
	"github.com/CobraFacil/api-vendedor/internal/vendedor"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	database, err := db.GetDB()
	if err != nil {
		logger.Fatal("erro ao conectar no banco", zap.Error(err))
	}

	// As liquidações e parcelas são criadas e mutadas pelas procedures do
	// banco; o AutoMigrate aqui cobre apenas o que o serviço lê e escreve.
	if err := database.AutoMigrate(
		&vendedor.Vendedor{},
		&liquidacao.LiquidacaoDiaria{},
	); err != nil {
		logger.Fatal("erro no AutoMigrate", zap.Error(err))
	}

	sessoes := sessao.NewStore(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositórios e handlers
	ledger := liquidacao.NewRepository(database)
	visitas := clienterota.NewRepository(database)

	vendedorHandler := vendedor.NewHandler(database, sessoes)
	liquidacaoHandler := liquidacao.NewHandler(ledger, visitas, cfg.JanelaLiquidacoes)
	calendarioHandler := calendario.NewHandler(ledger, cfg.JanelaLiquidacoes)
	clienteHandler := clienterota.NewHandler(visitas)

	// Router
	r := mux.NewRouter()
	r.Use(middleware.Logging(logger))

	// Rotas públicas
	r.HandleFunc("/login", vendedorHandler.Login).Methods("POST")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	api.HandleFunc("/logout", vendedorHandler.Logout).Methods("POST")
	api.HandleFunc("/perfil", vendedorHandler.Perfil).Methods("GET")
	api.HandleFunc("/sessao", vendedorHandler.Sessao).Methods("GET")

	api.HandleFunc("/calendario", calendarioHandler.Grade).Methods("GET")

	api.HandleFunc("/liquidacoes", liquidacaoHandler.Listar).Methods("GET")
	api.HandleFunc("/liquidacoes/painel", liquidacaoHandler.Painel).Methods("GET")
	api.HandleFunc("/liquidacoes/abrir", liquidacaoHandler.Abrir).Methods("POST")
	api.HandleFunc("/liquidacoes/{id}/fechar", liquidacaoHandler.Fechar).Methods("POST")
	api.HandleFunc("/liquidacoes/{id}/resumo", liquidacaoHandler.Resumo).Methods("GET")
	api.HandleFunc("/saldo", liquidacaoHandler.Saldo).Methods("GET")

	api.HandleFunc("/clientes-do-dia", clienteHandler.ListarDia).Methods("GET")
	api.HandleFunc("/pagamentos", clienteHandler.RegistrarPagamento).Methods("POST")

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllow,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	addr := fmt.Sprintf(":%d", cfg.Porta)
	logger.Info("servidor iniciado", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, c.Handler(r)); err != nil {
		logger.Fatal("erro no servidor", zap.Error(err))
	}
}
