// internal/comissao/handler.go
package comissao

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/AureaInvest/api-investidor/internal/tabelataxas"
)

// Handler gerencia rotas de alocação de comissão.
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// Criar trata POST /investidores/{id}/comissoes: expande o pagamento no
// cronograma mensal e persiste o retrato (cálculo + parcelas) em transação.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	// 1) pega ID do investidor captador
	invID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de investidor inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	// 2) decodifica no DTO
	var dto CriarComissaoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	dataPagamento, err := time.Parse(time.RFC3339, dto.DataPagamento)
	if err != nil {
		http.Error(w, "dataPagamento inválida (use RFC3339)", http.StatusBadRequest)
		return
	}

	// 3) monta a hierarquia; sem IDs no payload, busca no cadastro
	investidorID := uint(invID)
	hier := Hierarquia{InvestidorID: &investidorID, EscritorioID: dto.EscritorioID, AssessorID: dto.AssessorID}
	if hier.EscritorioID == nil && hier.AssessorID == nil {
		var cadastro struct {
			EscritorioID *uint
			AssessorID   *uint
		}
		if err := h.Repo.DB.Table("investidors").
			Select("escritorio_id, assessor_id").
			Where("id = ?", investidorID).
			Scan(&cadastro).Error; err == nil {
			hier.EscritorioID = cadastro.EscritorioID
			hier.AssessorID = cadastro.AssessorID
		}
	}

	// 4) volumes captados por beneficiário (acumulado + pagamento corrente)
	volumes := VolumesCaptados{}
	for _, id := range []*uint{hier.InvestidorID, hier.EscritorioID, hier.AssessorID} {
		if id == nil {
			continue
		}
		acumulado, err := h.Repo.VolumeCaptado(*id)
		if err != nil {
			http.Error(w, "erro ao apurar volume captado", http.StatusInternalServerError)
			return
		}
		volumes[*id] = acumulado.Add(dto.Valor)
	}

	// 5) roda o alocador
	pagamento := Pagamento{
		Valor:      dto.Valor,
		Data:       dataPagamento,
		PrazoMeses: dto.PrazoMeses,
		Ciclo:      tabelataxas.CicloLiquidez(dto.Ciclo),
	}
	cronograma := Alocar(pagamento, hier, volumes)

	// 6) persiste tudo em transação
	tx := h.Repo.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "não foi possível iniciar transação", http.StatusInternalServerError)
		return
	}
	defer func() {
		if rec := recover(); rec != nil {
			_ = tx.Rollback()
			http.Error(w, "falha interna", http.StatusInternalServerError)
		}
	}()

	calc := CalculoComissao{
		InvestidorID:  hier.InvestidorID,
		EscritorioID:  hier.EscritorioID,
		AssessorID:    hier.AssessorID,
		Valor:         dto.Valor,
		DataPagamento: dataPagamento,
		PrazoMeses:    dto.PrazoMeses,
		Ciclo:         dto.Ciclo,
		TotalReceber:  decimal.Zero,
	}
	if err := h.Repo.Create(tx, &calc); err != nil {
		_ = tx.Rollback()
		http.Error(w, "erro ao criar cálculo", http.StatusInternalServerError)
		return
	}

	parcelas := make([]*ParcelaComissao, 0, len(cronograma))
	for _, p := range cronograma {
		parcelas = append(parcelas, &ParcelaComissao{
			CalculoComissaoID: calc.ID,
			PeriodoAno:        p.PeriodoAno,
			PeriodoMes:        p.PeriodoMes,
			CotaInvestidor:    p.CotaInvestidor,
			CotaEscritorio:    p.CotaEscritorio,
			CotaAssessor:      p.CotaAssessor,
			Status:            "Pendente",
		})
	}
	if err := h.Repo.CreateParcelasInBatch(tx, parcelas); err != nil {
		_ = tx.Rollback()
		http.Error(w, "erro ao criar parcelas", http.StatusInternalServerError)
		return
	}

	if err := h.Repo.RecalcTotalForCalculo(tx, calc.ID); err != nil {
		_ = tx.Rollback()
		http.Error(w, "erro ao somar parcelas", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "erro ao confirmar transação", http.StatusInternalServerError)
		return
	}

	// recarrega (fora da tx) com preload
	completo, err := h.Repo.FindByID(calc.ID)
	if err != nil {
		http.Error(w, "erro ao carregar cálculo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(completo)
}

// Listar trata GET /investidores/{id}/comissoes.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	invID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de investidor inválido", http.StatusBadRequest)
		return
	}

	lista, err := h.Repo.ListByInvestidor(uint(invID))
	if err != nil {
		http.Error(w, "erro ao buscar cálculos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lista)
}

// BuscarPorID trata GET /comissoes/{cid}.
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	cid, err := strconv.Atoi(mux.Vars(r)["cid"])
	if err != nil {
		http.Error(w, "ID do cálculo inválido", http.StatusBadRequest)
		return
	}

	calc, err := h.Repo.FindByID(uint(cid))
	if err != nil {
		http.Error(w, "cálculo não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(calc)
}

// Deletar trata DELETE /comissoes/{cid} (admin).
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	cid, err := strconv.Atoi(mux.Vars(r)["cid"])
	if err != nil {
		http.Error(w, "ID do cálculo inválido", http.StatusBadRequest)
		return
	}

	calc, err := h.Repo.FindByID(uint(cid))
	if err != nil {
		http.Error(w, "cálculo não encontrado", http.StatusNotFound)
		return
	}

	if err := h.Repo.Delete(calc); err != nil {
		http.Error(w, "erro ao deletar cálculo", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
