// internal/comissao/alocador.go
package comissao

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/AureaInvest/api-investidor/internal/tabelataxas"
)

// Percentuais mensais base por papel, sobre o valor do pagamento.
var (
	percentualInvestidor = decimal.NewFromInt(2)
	percentualEscritorio = decimal.NewFromInt(1)
	percentualAssessor   = decimal.NewFromInt(3)
)

// Faixas de bônus de performance por volume captado. A faixa maior
// substitui a menor, não soma.
var (
	volumeFaixa1 = decimal.NewFromInt(500000)
	volumeFaixa2 = decimal.NewFromInt(1000000)
	bonusFaixa1  = decimal.NewFromInt(1)
	bonusFaixa2  = decimal.NewFromInt(3)
)

// Pagamento é o evento que origina a comissão.
type Pagamento struct {
	Valor      decimal.Decimal
	Data       time.Time
	PrazoMeses int
	Ciclo      tabelataxas.CicloLiquidez
}

// Hierarquia identifica os beneficiários da comissão. Papéis ausentes
// (ponteiro nulo) simplesmente não recebem.
type Hierarquia struct {
	InvestidorID *uint
	EscritorioID *uint
	AssessorID   *uint
}

// VolumesCaptados acumula o volume captado por beneficiário, base das
// faixas de bônus. O chamador inclui o pagamento corrente no acumulado.
type VolumesCaptados map[uint]decimal.Decimal

// ParcelaAlocada é uma linha do cronograma mensal de comissões.
type ParcelaAlocada struct {
	PeriodoAno     int             `json:"periodoAno"`
	PeriodoMes     int             `json:"periodoMes"`
	CotaInvestidor decimal.Decimal `json:"cotaInvestidor"`
	CotaEscritorio decimal.Decimal `json:"cotaEscritorio"`
	CotaAssessor   decimal.Decimal `json:"cotaAssessor"`
}

var cem = decimal.NewFromInt(100)

// Alocar expande o pagamento em um cronograma com uma parcela por mês de
// calendário, do mês do pagamento até o fim do prazo, sem pulos. Cada cota
// mensal vale valor x (percentual base + bônus) / 100, em precisão cheia;
// arredondamento fica para a camada de exibição.
//
// Entradas degeneradas (valor ou prazo não positivos) produzem cronograma
// vazio: ausência de comissão é um resultado válido, não um erro.
func Alocar(p Pagamento, h Hierarquia, volumes VolumesCaptados) []ParcelaAlocada {
	if p.PrazoMeses <= 0 || !p.Valor.IsPositive() {
		return nil
	}

	taxaInvestidor := taxaDoPapel(h.InvestidorID, percentualInvestidor, p.Valor, volumes)
	taxaEscritorio := taxaDoPapel(h.EscritorioID, percentualEscritorio, p.Valor, volumes)
	taxaAssessor := taxaDoPapel(h.AssessorID, percentualAssessor, p.Valor, volumes)

	// Aritmética explícita de ano/mês: AddDate normalizaria 31/jan + 1 mês
	// para março e furaria o cronograma.
	ano, mes := p.Data.Year(), int(p.Data.Month())

	parcelas := make([]ParcelaAlocada, 0, p.PrazoMeses)
	for i := 0; i < p.PrazoMeses; i++ {
		idx := mes - 1 + i
		parcelas = append(parcelas, ParcelaAlocada{
			PeriodoAno:     ano + idx/12,
			PeriodoMes:     idx%12 + 1,
			CotaInvestidor: p.Valor.Mul(taxaInvestidor).Div(cem),
			CotaEscritorio: p.Valor.Mul(taxaEscritorio).Div(cem),
			CotaAssessor:   p.Valor.Mul(taxaAssessor).Div(cem),
		})
	}
	return parcelas
}

// taxaDoPapel soma o percentual base ao bônus de performance do
// beneficiário. Sem beneficiário, a cota é zero. Sem volume acumulado
// informado, o pagamento é avaliado isoladamente contra as faixas.
func taxaDoPapel(id *uint, base decimal.Decimal, valorPagamento decimal.Decimal, volumes VolumesCaptados) decimal.Decimal {
	if id == nil {
		return decimal.Zero
	}
	volume := valorPagamento
	if v, ok := volumes[*id]; ok {
		volume = v
	}
	return base.Add(bonusPorVolume(volume))
}

func bonusPorVolume(volume decimal.Decimal) decimal.Decimal {
	switch {
	case volume.GreaterThanOrEqual(volumeFaixa2):
		return bonusFaixa2
	case volume.GreaterThanOrEqual(volumeFaixa1):
		return bonusFaixa1
	}
	return decimal.Zero
}
