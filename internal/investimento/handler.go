// internal/investimento/handler.go
package investimento

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/AureaInvest/api-investidor/internal/auth"
	"github.com/AureaInvest/api-investidor/internal/carencia"
	"github.com/AureaInvest/api-investidor/internal/cdi"
	"github.com/AureaInvest/api-investidor/internal/notificacao"
	"github.com/AureaInvest/api-investidor/internal/projecao"
	"github.com/AureaInvest/api-investidor/internal/resgate"
	"github.com/AureaInvest/api-investidor/internal/tabelataxas"
)

// Handler concentra as rotas de aplicações e tudo que é calculado sobre
// elas: projeção, simulação e criação de resgates, comparativo com o CDI.
type Handler struct {
	DB       *gorm.DB
	Repo     *Repository
	Resgates *resgate.Repository
	Taxas    tabelataxas.Config
}

// NewHandler retorna um handler inicializado.
func NewHandler(db *gorm.DB, taxas tabelataxas.Config) *Handler {
	return &Handler{
		DB:       db,
		Repo:     NewRepository(db),
		Resgates: resgate.NewRepository(db),
		Taxas:    taxas,
	}
}

// carregar busca a aplicação e aplica o controle de acesso do dono.
func (h *Handler) carregar(w http.ResponseWriter, r *http.Request) *Investimento {
	userID := r.Context().Value(auth.UsuarioIDKey).(uint)
	isAdmin := r.Context().Value(auth.IsAdminKey).(bool)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return nil
	}

	inv, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "investimento não encontrado", http.StatusNotFound)
		return nil
	}
	if !isAdmin && inv.InvestidorID != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return nil
	}
	return inv
}

// Criar trata POST /investimentos. A taxa mensal é resolvida aqui, uma
// única vez, e gravada no registro.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UsuarioIDKey).(uint)

	var dto CriarInvestimentoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if !dto.Principal.IsPositive() {
		http.Error(w, "principal deve ser maior que zero", http.StatusBadRequest)
		return
	}

	taxa, err := tabelataxas.ResolverTaxaMensal(h.Taxas, dto.PrazoMeses, tabelataxas.CicloLiquidez(dto.Ciclo))
	if err != nil {
		var combinacao *tabelataxas.ErrCombinacaoInvalida
		if errors.As(err, &combinacao) {
			http.Error(w, combinacao.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "erro ao resolver taxa", http.StatusInternalServerError)
		return
	}

	inicio := time.Now()
	if dto.DataInicio != "" {
		inicio, err = time.Parse(time.RFC3339, dto.DataInicio)
		if err != nil {
			http.Error(w, "dataInicio inválida (use RFC3339)", http.StatusBadRequest)
			return
		}
	}

	inv := Investimento{
		InvestidorID: userID,
		Principal:    dto.Principal,
		PrazoMeses:   dto.PrazoMeses,
		Ciclo:        dto.Ciclo,
		TaxaMensal:   taxa,
		DataInicio:   inicio,
		Status:       StatusPendente,
	}
	if err := h.Repo.Create(&inv); err != nil {
		http.Error(w, "erro ao salvar investimento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(inv)
}

// Listar trata GET /investimentos — aplicações do investidor logado.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UsuarioIDKey).(uint)

	lista, err := h.Repo.ListByInvestidor(userID)
	if err != nil {
		http.Error(w, "erro ao listar investimentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lista)
}

// BuscarPorID trata GET /investimentos/{id}.
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	inv := h.carregar(w, r)
	if inv == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(inv)
}

// AtualizarStatus trata PATCH /investimentos/{id}/status (admin).
// Ativação exige taxa mensal positiva.
func (h *Handler) AtualizarStatus(w http.ResponseWriter, r *http.Request) {
	inv := h.carregar(w, r)
	if inv == nil {
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
	case StatusPendente, StatusAtivo, StatusEncerrado:
	default:
		http.Error(w, "status inválido", http.StatusBadRequest)
		return
	}
	if payload.Status == StatusAtivo && !inv.TaxaMensal.IsPositive() {
		http.Error(w, "investimento sem taxa mensal não pode ser ativado", http.StatusBadRequest)
		return
	}

	if err := h.Repo.UpdateStatus(nil, inv.ID, payload.Status); err != nil {
		http.Error(w, "erro ao atualizar status", http.StatusInternalServerError)
		return
	}
	inv.Status = payload.Status
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(inv)
}

// Projecao trata GET /investimentos/{id}/projecao.
func (h *Handler) Projecao(w http.ResponseWriter, r *http.Request) {
	inv := h.carregar(w, r)
	if inv == nil {
		return
	}

	registros, err := h.Resgates.ListByInvestimento(inv.ID)
	if err != nil {
		http.Error(w, "erro ao buscar resgates", http.StatusInternalServerError)
		return
	}
	anteriores := resgate.Anteriores(registros)

	snap := inv.Snapshot()
	hoje := time.Now()
	proj := projecao.Projetar(snap.Principal, snap.TaxaMensal, snap.PrazoMeses, snap.Ciclo)

	dto := ProjecaoDTO{
		RetornoMensalSimples: proj.RetornoMensalSimples,
		RetornoTotal:         proj.RetornoTotal,
		ValorFinal:           proj.ValorFinal,
		PrincipalDisponivel:  carencia.PrincipalDisponivel(snap.Principal, anteriores),
		JanelaAberta:         carencia.PodeResgatar(snap, carencia.DividendosPorPeriodo, hoje),
		DisponivelEm:         carencia.DataDisponivel(snap),
		DividendosAcumulados: carencia.ValorAcumulado(snap, carencia.DividendosPorPeriodo, hoje, anteriores),
		RetornoMensalAtual:   carencia.ValorAcumulado(snap, carencia.RetornoMensal, hoje, anteriores),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dto)
}

// resolverResgate roda o motor para o pedido, sem gravar nada.
func (h *Handler) resolverResgate(w http.ResponseWriter, r *http.Request, inv *Investimento) (*resgate.Resultado, carencia.TipoResgate, bool) {
	var dto SimularResgateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return nil, "", false
	}

	tipo := carencia.TipoResgate(dto.Tipo)
	registros, err := h.Resgates.ListByInvestimento(inv.ID)
	if err != nil {
		http.Error(w, "erro ao buscar resgates anteriores", http.StatusInternalServerError)
		return nil, "", false
	}

	resultado, err := resgate.Resolver(inv.Snapshot(), tipo, dto.Valor, time.Now(), resgate.Anteriores(registros))
	if err != nil {
		var (
			insuficiente  *resgate.ErrSaldoInsuficiente
			minimo        *resgate.ErrAbaixoDoMinimo
			elegibilidade *resgate.ErrAindaNaoElegivel
		)
		switch {
		case errors.As(err, &insuficiente), errors.As(err, &minimo), errors.As(err, &elegibilidade):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "erro ao calcular resgate", http.StatusInternalServerError)
		}
		return nil, "", false
	}
	return resultado, tipo, true
}

// SimularResgate trata POST /investimentos/{id}/resgates/simulacao.
// Só cálculo, nada é gravado.
func (h *Handler) SimularResgate(w http.ResponseWriter, r *http.Request) {
	inv := h.carregar(w, r)
	if inv == nil {
		return
	}
	resultado, _, ok := h.resolverResgate(w, r, inv)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resultado)
}

// CriarResgate trata POST /investimentos/{id}/resgates: resolve o pedido e
// grava o registro imutável em transação. Resgate total encerra a aplicação.
func (h *Handler) CriarResgate(w http.ResponseWriter, r *http.Request) {
	inv := h.carregar(w, r)
	if inv == nil {
		return
	}
	if inv.Status != StatusAtivo {
		http.Error(w, "apenas investimentos ativos aceitam resgate", http.StatusBadRequest)
		return
	}

	resultado, tipo, ok := h.resolverResgate(w, r, inv)
	if !ok {
		return
	}

	registro := resgate.Resgate{
		InvestimentoID: inv.ID,
		Protocolo:      uuid.NewString(),
		Tipo:           string(tipo),
		ValorBruto:     resultado.ValorBruto,
		Penalidade:     resultado.Penalidade,
		ValorLiquido:   resultado.ValorLiquido,
		Status:         resgate.StatusPendente,
	}

	tx := h.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "não foi possível iniciar transação", http.StatusInternalServerError)
		return
	}
	if err := h.Resgates.WithDB(tx).Create(&registro); err != nil {
		_ = tx.Rollback()
		http.Error(w, "erro ao gravar resgate", http.StatusInternalServerError)
		return
	}
	if tipo == carencia.Total {
		if err := h.Repo.UpdateStatus(tx, inv.ID, StatusEncerrado); err != nil {
			_ = tx.Rollback()
			http.Error(w, "erro ao encerrar investimento", http.StatusInternalServerError)
			return
		}
	}
	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "erro ao confirmar transação", http.StatusInternalServerError)
		return
	}

	if tipo == carencia.Total {
		go notificacao.EnviarWebhookResgateTotal(inv.ID, resultado.ValorBruto.StringFixed(2))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(ResgateCriadoDTO{Resgate: registro, Resultado: *resultado})
}

// ComparativoCDI trata GET /investimentos/{id}/comparativo-cdi?valor=&taxaCdi=.
// Mostra quanto o valor resgatado deixaria de render até o vencimento.
func (h *Handler) ComparativoCDI(w http.ResponseWriter, r *http.Request) {
	inv := h.carregar(w, r)
	if inv == nil {
		return
	}

	valor, err := decimal.NewFromString(r.URL.Query().Get("valor"))
	if err != nil || !valor.IsPositive() {
		http.Error(w, "parâmetro 'valor' inválido", http.StatusBadRequest)
		return
	}
	taxaCDI, err := decimal.NewFromString(r.URL.Query().Get("taxaCdi"))
	if err != nil || taxaCDI.IsNegative() {
		http.Error(w, "parâmetro 'taxaCdi' inválido", http.StatusBadRequest)
		return
	}

	meses := cdi.MesesRestantes(inv.Vencimento(), time.Now())
	comparacao := cdi.Comparar(valor, inv.TaxaMensal, taxaCDI, meses)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(comparacao)
}
