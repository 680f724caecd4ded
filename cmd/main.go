package main

import (
	"log"
	"net/http"
	"os"

	"github.com/CacambaFacil/api-gestao/internal/auth"
	"github.com/CacambaFacil/api-gestao/internal/calculocomissao"
	"github.com/CacambaFacil/api-gestao/internal/faixacomissao"
	"github.com/CacambaFacil/api-gestao/internal/pagamentocomissao"
	"github.com/CacambaFacil/api-gestao/internal/recebedor"
	"github.com/CacambaFacil/api-gestao/internal/utils/db"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// .env é opcional: em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := faixacomissao.Migrate(database); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}
	if err := calculocomissao.Migrate(database); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}
	if err := pagamentocomissao.Migrate(database); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}
	if err := recebedor.Migrate(database); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	params := calculocomissao.CarregarParametros()

	// Repositórios e handlers
	faixaRepo := faixacomissao.NewRepository(database)
	calcRepo := calculocomissao.NewRepository(database)
	pagamentoRepo := pagamentocomissao.NewRepository(database)

	faixaHandler := faixacomissao.NewHandler(faixaRepo)
	calcHandler := calculocomissao.NewHandler(calcRepo, faixaRepo, params)
	pagamentoHandler := pagamentocomissao.NewHandler(pagamentoRepo, calcRepo, faixaRepo, params)
	recebedorHandler := recebedor.NewHandler(database, pagamentoRepo)

	// Router
	r := mux.NewRouter()

	autenticado := func(h http.HandlerFunc) http.Handler {
		return auth.MiddlewareAutenticacao(h)
	}
	somenteAdmin := func(h http.HandlerFunc) http.Handler {
		return auth.MiddlewareAutenticacao(auth.RequireAdmin(h))
	}

	// Rotas públicas
	r.HandleFunc("/recebedores/login", recebedorHandler.Login).Methods("POST")

	// Rotas autenticadas
	r.Handle("/me", autenticado(recebedorHandler.Me)).Methods("GET")
	r.Handle("/recebedores/{id}", autenticado(recebedorHandler.BuscarPorID)).Methods("GET")
	r.Handle("/recebedores/{id}", autenticado(recebedorHandler.Atualizar)).Methods("PUT")
	r.Handle("/recebedores/{id}/senha", autenticado(recebedorHandler.AlterarSenha)).Methods("PUT")
	r.Handle("/recebedores/{id}/resumo", autenticado(recebedorHandler.Resumo)).Methods("GET")
	r.Handle("/recebedores/{id}/pagamentos", autenticado(pagamentoHandler.ListByRecebedor)).Methods("GET")
	r.Handle("/pagamentos/{pid}", autenticado(pagamentoHandler.Get)).Methods("GET")

	// Rotas de administração (gestão de comissões)
	r.Handle("/recebedores", somenteAdmin(recebedorHandler.Criar)).Methods("POST")
	r.Handle("/recebedores", somenteAdmin(recebedorHandler.Listar)).Methods("GET")
	r.Handle("/recebedores/{id}", somenteAdmin(recebedorHandler.Deletar)).Methods("DELETE")

	r.Handle("/tabelas-faixas", somenteAdmin(faixaHandler.Publicar)).Methods("POST")
	r.Handle("/tabelas-faixas", somenteAdmin(faixaHandler.Listar)).Methods("GET")
	r.Handle("/tabelas-faixas/ativa", somenteAdmin(faixaHandler.TabelaAtiva)).Methods("GET")
	r.Handle("/tabelas-faixas/ativa/resolver", somenteAdmin(faixaHandler.Resolver)).Methods("GET")
	r.Handle("/tabelas-faixas/{id}", somenteAdmin(faixaHandler.BuscarPorID)).Methods("GET")
	r.Handle("/tabelas-faixas/{id}/ativar", somenteAdmin(faixaHandler.Ativar)).Methods("POST")

	r.Handle("/calculos/simular", somenteAdmin(calcHandler.Simular)).Methods("POST")
	r.Handle("/calculos", somenteAdmin(calcHandler.ListByFaixa)).Methods("GET")
	r.Handle("/calculos/{id}", somenteAdmin(calcHandler.Get)).Methods("GET")

	r.Handle("/recebedores/{id}/pagamentos", somenteAdmin(pagamentoHandler.Create)).Methods("POST")
	r.Handle("/pagamentos", somenteAdmin(pagamentoHandler.List)).Methods("GET")
	r.Handle("/pagamentos/{pid}/transicao", somenteAdmin(pagamentoHandler.Transicao)).Methods("PATCH")
	r.Handle("/pagamentos/{pid}/recalcular", somenteAdmin(pagamentoHandler.Recalcular)).Methods("POST")
	r.Handle("/pagamentos/{pid}/comprovante", somenteAdmin(pagamentoHandler.UpdateComprovante)).Methods("POST")
	r.Handle("/pagamentos/{pid}/comprovante", somenteAdmin(pagamentoHandler.DeleteComprovante)).Methods("DELETE")
	r.Handle("/pagamentos/{pid}/nota-fiscal", somenteAdmin(pagamentoHandler.UpdateNotaFiscal)).Methods("POST")
	r.Handle("/pagamentos/{pid}/nota-fiscal", somenteAdmin(pagamentoHandler.DeleteNotaFiscal)).Methods("DELETE")

	r.Handle("/relatorios/pagamentos", somenteAdmin(pagamentoHandler.RelatorioPeriodo)).Methods("GET")
	r.Handle("/relatorios/pagamentos/geral", somenteAdmin(pagamentoHandler.RelatorioGeral)).Methods("GET")

	// CORS para o painel de gestão
	origem := os.Getenv("CORS_ORIGIN")
	if origem == "" {
		origem = "http://localhost:3000"
	}
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{origem},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	log.Println("Servidor rodando em http://localhost:" + porta)
	log.Fatal(http.ListenAndServe(":"+porta, c.Handler(r)))
}
