// internal/resgate/handler.go
package resgate

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/AureaInvest/api-investidor/internal/auth"
)

// Handler expõe as rotas de consulta e acompanhamento de resgates.
// A criação de resgates mora nas rotas de investimento, que carregam o
// contexto completo da aplicação.
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// Listar trata GET /resgates — o investidor vê os próprios pedidos.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UsuarioIDKey).(uint)

	lista, err := h.Repo.ListByInvestidor(userID)
	if err != nil {
		http.Error(w, "erro ao buscar resgates", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lista)
}

// BuscarPorID trata GET /resgates/{id}.
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de resgate inválido", http.StatusBadRequest)
		return
	}

	res, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "resgate não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// AtualizarStatus trata PATCH /resgates/{id}/status (admin).
// O registro financeiro é imutável; apenas o acompanhamento do pedido muda.
func (h *Handler) AtualizarStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de resgate inválido", http.StatusBadRequest)
		return
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	switch payload.Status {
	case StatusPendente, StatusPago, StatusNegado:
	default:
		http.Error(w, "status inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repo.UpdateStatus(uint(id), payload.Status); err != nil {
		http.Error(w, "erro ao atualizar status do resgate", http.StatusInternalServerError)
		return
	}

	res, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "resgate não encontrado após atualização", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
