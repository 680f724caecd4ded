package recebedor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/CacambaFacil/api-gestao/internal/auth"
	"github.com/CacambaFacil/api-gestao/internal/pagamentocomissao"
	"github.com/CacambaFacil/api-gestao/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Pagamentos *pagamentocomissao.Repository
	validate   *validator.Validate
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB, pagamentos *pagamentocomissao.Repository) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Pagamentos: pagamentos,
		validate:   validator.New(),
	}
}

// Login gera um JWT para credenciais válidas
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	// Busca por email ou documento
	rec, err := h.Repository.BuscarPorEmailOuDocumento(h.DB, req.Login)
	if err != nil {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}

	if !utils.VerificarSenha(rec.Senha, req.Password) {
		http.Error(w, "senha incorreta", http.StatusUnauthorized)
		return
	}

	token, err := auth.GerarToken(rec.ID, rec.IsAdmin)
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(LoginResponse{
		Token:                 token,
		PrecisaRedefinirSenha: rec.PrecisaRedefinirSenha,
	})
}

// Criar cadastra um recebedor novo (rota de admin).
// Sem senha no payload, gera uma senha temporária devolvida uma única vez na
// resposta e obriga o recebedor a redefini-la no primeiro acesso.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req CreateRecebedorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "payload inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	senha := req.Senha
	var senhaTemporaria string
	if senha == "" {
		temp, err := utils.GerarSenhaTemporaria()
		if err != nil {
			http.Error(w, "erro ao gerar senha temporária", http.StatusInternalServerError)
			return
		}
		senha = temp
		senhaTemporaria = temp
	}

	hash, err := utils.HashSenha(senha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	rec := Recebedor{
		Nome:                  req.Nome,
		Sobrenome:             req.Sobrenome,
		Tipo:                  req.Tipo,
		Documento:             req.Documento,
		Email:                 req.Email,
		Telefone:              req.Telefone,
		Foto:                  req.Foto,
		Senha:                 hash,
		PrecisaRedefinirSenha: senhaTemporaria != "",
		IsAdmin:               req.IsAdmin,
	}

	if err := h.Repository.Salvar(h.DB, &rec); err != nil {
		http.Error(w, "erro ao salvar recebedor", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(RecebedorCriadoDTO{Recebedor: rec, SenhaTemporaria: senhaTemporaria})
}

// Listar retorna todos os recebedores, com filtro opcional por tipo
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	isAdmin, _ := r.Context().Value(auth.CtxIsAdmin).(bool)
	userID, _ := r.Context().Value(auth.CtxRecebedorID).(uint)

	if !isAdmin {
		// não-admin vê apenas o próprio registro
		obj, err := h.Repository.BuscarPorID(h.DB, userID)
		if err != nil {
			http.Error(w, "recebedor não encontrado", http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode([]Recebedor{*obj})
		return
	}

	tipo := r.URL.Query().Get("tipo")
	var list []Recebedor
	var err error
	if tipo != "" {
		if !pagamentocomissao.TipoValido(tipo) {
			http.Error(w, "tipo de recebedor inválido", http.StatusBadRequest)
			return
		}
		list, err = h.Repository.ListarPorTipo(h.DB, tipo)
	} else {
		list, err = h.Repository.ListarTodos(h.DB)
	}
	if err != nil {
		http.Error(w, "erro ao listar recebedores", http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(list)
}

// BuscarPorID retorna um recebedor pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.CtxRecebedorID).(uint)
	isAdmin, _ := r.Context().Value(auth.CtxIsAdmin).(bool)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if !isAdmin && uint(id) != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "recebedor não encontrado", http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(obj)
}

// Atualizar altera dados de um recebedor existente
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.CtxRecebedorID).(uint)
	isAdmin, _ := r.Context().Value(auth.CtxIsAdmin).(bool)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if !isAdmin && uint(id) != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	var req UpdateRecebedorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), &req); err != nil {
		http.Error(w, "erro ao atualizar recebedor", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("recebedor atualizado com sucesso"))
}

// AlterarSenha troca a senha do recebedor e encerra a senha temporária, se
// houver. Exige a senha atual mesmo para admin.
func (h *Handler) AlterarSenha(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.CtxRecebedorID).(uint)
	isAdmin, _ := r.Context().Value(auth.CtxIsAdmin).(bool)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if !isAdmin && uint(id) != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	var req AlterarSenhaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "payload inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "recebedor não encontrado", http.StatusNotFound)
		return
	}
	if !utils.VerificarSenha(rec.Senha, req.SenhaAtual) {
		http.Error(w, "senha atual incorreta", http.StatusUnauthorized)
		return
	}

	hash, err := utils.HashSenha(req.SenhaNova)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}
	if err := h.Repository.AtualizarSenha(h.DB, uint(id), hash); err != nil {
		http.Error(w, "erro ao atualizar senha", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("senha alterada com sucesso"))
}

// Deletar desativa um recebedor (soft delete; pagamentos ficam no histórico)
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir recebedor", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("recebedor excluído com sucesso"))
}

// Resumo constrói o painel de comissões de um recebedor
func (h *Handler) Resumo(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.CtxRecebedorID).(uint)
	isAdmin, _ := r.Context().Value(auth.CtxIsAdmin).(bool)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if !isAdmin && uint(id) != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	rec, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "recebedor não encontrado", http.StatusNotFound)
		return
	}

	pagamentos, err := h.Pagamentos.ListByRecebedor(rec.ID)
	if err != nil {
		http.Error(w, "erro ao buscar pagamentos", http.StatusInternalServerError)
		return
	}
	totalLiquido, err := h.Pagamentos.SumLiquidoByRecebedor(rec.ID)
	if err != nil {
		http.Error(w, "erro ao somar pagamentos", http.StatusInternalServerError)
		return
	}

	dto := ResumoRecebedorDTO{
		Recebedor:     *rec,
		TotalLiquido:  totalLiquido,
		TotalPago:     pagamentocomissao.TotalPago(pagamentos),
		TotalPendente: pagamentocomissao.TotalPendente(pagamentos),
		MediaKPI:      pagamentocomissao.MediaKPI(pagamentos),
		QtdPagamentos: len(pagamentos),
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(dto)
}

// Me retorna o recebedor logado
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.CtxRecebedorID).(uint)

	var rec Recebedor
	if err := h.DB.First(&rec, userID).Error; err != nil {
		http.Error(w, "recebedor não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rec)
}
