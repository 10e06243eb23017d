package investidor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/AureaInvest/api-investidor/internal/auth"
	"github.com/AureaInvest/api-investidor/internal/comissao"
	"github.com/AureaInvest/api-investidor/internal/investimento"
	"github.com/AureaInvest/api-investidor/internal/resgate"
	"github.com/AureaInvest/api-investidor/internal/utils"
)

// request DTOs
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type createInvestidorRequest struct {
	Nome         string `json:"nome"`
	Sobrenome    string `json:"sobrenome"`
	CPF          string `json:"cpf"`
	Email        string `json:"email"`
	Telefone     string `json:"telefone"`
	Foto         string `json:"foto"`
	Senha        string `json:"senha"`
	IsAdmin      bool   `json:"isAdmin"`
	EscritorioID *uint  `json:"escritorioId"`
	AssessorID   *uint  `json:"assessorId"`
}

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// Login valida as credenciais e emite access + refresh token
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	// Busca usuário por email ou CPF
	user, err := h.Repository.BuscarPorEmailOuCPF(h.DB, req.Login)
	if err != nil {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}

	// Verifica senha
	if !utils.CheckSenha(user.Senha, req.Password) {
		http.Error(w, "senha incorreta", http.StatusUnauthorized)
		return
	}

	token, err := auth.IssueTokensOnLogin(h.DB, w, user.ID, user.IsAdmin)
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// CriarInvestidor cadastra novo investidor (livre de autenticação)
func (h *Handler) CriarInvestidor(w http.ResponseWriter, r *http.Request) {
	var req createInvestidorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	// Gera hash da senha
	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	// Monta modelo
	i := Investidor{
		Nome:                  req.Nome,
		Sobrenome:             req.Sobrenome,
		CPF:                   req.CPF,
		Email:                 req.Email,
		Telefone:              req.Telefone,
		Foto:                  req.Foto,
		Senha:                 hash,
		PrecisaRedefinirSenha: false,
		IsAdmin:               req.IsAdmin,
		EscritorioID:          req.EscritorioID,
		AssessorID:            req.AssessorID,
	}

	if err := h.Repository.Salvar(h.DB, &i); err != nil {
		http.Error(w, "erro ao salvar investidor", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(i)
}

// ListarInvestidores retorna todos ou apenas o próprio registro
func (h *Handler) ListarInvestidores(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UsuarioIDKey).(uint)
	isAdmin := r.Context().Value(auth.IsAdminKey).(bool)

	if isAdmin {
		investidores, err := h.Repository.ListarTodos(h.DB)
		if err != nil {
			http.Error(w, "erro ao listar investidores", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(investidores)
		return
	}

	// não-admin vê apenas o próprio
	obj, err := h.Repository.BuscarPorID(h.DB, userID)
	if err != nil {
		http.Error(w, "investidor não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode([]Investidor{*obj})
}

// BuscarPorID retorna um investidor pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UsuarioIDKey).(uint)
	isAdmin := r.Context().Value(auth.IsAdminKey).(bool)

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
		http.Error(w, "investidor não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(obj)
}

// AtualizarInvestidor altera dados de um investidor existente
func (h *Handler) AtualizarInvestidor(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UsuarioIDKey).(uint)
	isAdmin := r.Context().Value(auth.IsAdminKey).(bool)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if !isAdmin && uint(id) != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	var dados Investidor
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		http.Error(w, "erro ao atualizar investidor", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("investidor atualizado com sucesso"))
}

// DeletarInvestidor remove um investidor
func (h *Handler) DeletarInvestidor(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UsuarioIDKey).(uint)
	isAdmin := r.Context().Value(auth.IsAdminKey).(bool)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if !isAdmin && uint(id) != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir investidor", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("investidor excluído com sucesso"))
}

// ObterResumoInvestidor constrói e retorna o DTO de resumo do painel
func (h *Handler) ObterResumoInvestidor(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UsuarioIDKey).(uint)
	isAdmin := r.Context().Value(auth.IsAdminKey).(bool)

	idParam := userID
	if isAdmin {
		if idStr := mux.Vars(r)["id"]; idStr != "" {
			if i, err := strconv.Atoi(idStr); err == nil {
				idParam = uint(i)
			}
		}
	}

	obj, err := h.Repository.BuscarPorID(h.DB, idParam)
	if err != nil {
		http.Error(w, "investidor não encontrado", http.StatusNotFound)
		return
	}

	aplicacoes, _ := investimento.NewRepository(h.DB).ListByInvestidor(obj.ID)
	resgates, _ := resgate.NewRepository(h.DB).ListByInvestidor(obj.ID)
	calculos, _ := comissao.NewRepository(h.DB).ListByInvestidor(obj.ID)
	dto := MontarResumoInvestidorDTO(*obj, aplicacoes, resgates, calculos)

	json.NewEncoder(w).Encode(dto)
}

// Me retorna o usuário logado
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UsuarioIDKey).(uint)

	var i Investidor
	if err := h.DB.First(&i, userID).Error; err != nil {
		http.Error(w, "investidor não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(i)
}
