package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/AureaInvest/api-investidor/internal/auth"
	"github.com/AureaInvest/api-investidor/internal/comissao"
	"github.com/AureaInvest/api-investidor/internal/investidor"
	"github.com/AureaInvest/api-investidor/internal/investimento"
	"github.com/AureaInvest/api-investidor/internal/resgate"
	"github.com/AureaInvest/api-investidor/internal/tabelataxas"
	"github.com/AureaInvest/api-investidor/internal/utils/db"

	"github.com/gorilla/mux"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis do ambiente")
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&investidor.Investidor{},
		&auth.RefreshToken{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}
	if err := investimento.Migrate(database); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}
	if err := resgate.Migrate(database); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}
	if err := comissao.Migrate(database); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Handlers
	investidorHandler := investidor.NewHandler(database)
	investimentoHandler := investimento.NewHandler(database, tabelataxas.ConfigDoAmbiente())
	resgateHandler := resgate.NewHandler(resgate.NewRepository(database))
	comissaoHandler := comissao.NewHandler(comissao.NewRepository(database))

	// Router
	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/login", investidorHandler.Login).Methods("POST")
	r.HandleFunc("/auth/refresh", auth.RefreshHTTPHandler(database)).Methods("POST")
	r.HandleFunc("/auth/logout", auth.LogoutHTTPHandler(database)).Methods("POST")
	r.HandleFunc("/investidores", investidorHandler.CriarInvestidor).Methods("POST")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Rotas de investidores
	api.HandleFunc("/investidores", investidorHandler.ListarInvestidores).Methods("GET")
	api.HandleFunc("/investidores/me", investidorHandler.Me).Methods("GET")
	api.HandleFunc("/investidores/resumo", investidorHandler.ObterResumoInvestidor).Methods("GET")
	api.HandleFunc("/investidores/{id}", investidorHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/investidores/{id}", investidorHandler.AtualizarInvestidor).Methods("PUT")
	api.HandleFunc("/investidores/{id}", investidorHandler.DeletarInvestidor).Methods("DELETE")
	api.HandleFunc("/investidores/{id}/resumo", investidorHandler.ObterResumoInvestidor).Methods("GET")

	// Rotas de investimentos
	api.HandleFunc("/investimentos", investimentoHandler.Criar).Methods("POST")
	api.HandleFunc("/investimentos", investimentoHandler.Listar).Methods("GET")
	api.HandleFunc("/investimentos/{id}", investimentoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/investimentos/{id}/projecao", investimentoHandler.Projecao).Methods("GET")
	api.HandleFunc("/investimentos/{id}/comparativo-cdi", investimentoHandler.ComparativoCDI).Methods("GET")
	api.HandleFunc("/investimentos/{id}/resgates/simulacao", investimentoHandler.SimularResgate).Methods("POST")
	api.HandleFunc("/investimentos/{id}/resgates", investimentoHandler.CriarResgate).Methods("POST")

	// Rotas de resgates
	api.HandleFunc("/resgates", resgateHandler.Listar).Methods("GET")
	api.HandleFunc("/resgates/{id}", resgateHandler.BuscarPorID).Methods("GET")

	// Rotas de comissões
	api.HandleFunc("/investidores/{id}/comissoes", comissaoHandler.Criar).Methods("POST")
	api.HandleFunc("/investidores/{id}/comissoes", comissaoHandler.Listar).Methods("GET")
	api.HandleFunc("/comissoes/{cid}", comissaoHandler.BuscarPorID).Methods("GET")

	// Rotas administrativas
	admin := api.NewRoute().Subrouter()
	admin.Use(auth.RequireAdmin)
	admin.HandleFunc("/investimentos/{id}/status", investimentoHandler.AtualizarStatus).Methods("PATCH")
	admin.HandleFunc("/resgates/{id}/status", resgateHandler.AtualizarStatus).Methods("PATCH")
	admin.HandleFunc("/comissoes/{cid}", comissaoHandler.Deletar).Methods("DELETE")

	handler := cors.New(cors.Options{
		AllowedOrigins:   []string{os.Getenv("CORS_ORIGIN")},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(r)

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	// Inicia servidor
	fmt.Printf("Servidor rodando em http://localhost:%s\n", porta)
	log.Fatal(http.ListenAndServe(":"+porta, handler))
}
