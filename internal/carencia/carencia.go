// internal/carencia/carencia.go
package carencia

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/AureaInvest/api-investidor/internal/tabelataxas"
)

// TipoResgate identifica o que o investidor quer sacar.
type TipoResgate string

const (
	DividendosPorPeriodo TipoResgate = "DividendosPorPeriodo"
	RetornoMensal        TipoResgate = "RetornoMensal"
	Parcial              TipoResgate = "Parcial"
	Total                TipoResgate = "Total"
)

// Investimento é o retrato imutável de uma aplicação, usado por todos os
// cálculos puros do motor. Quem carrega os dados do banco monta este struct.
type Investimento struct {
	Principal  decimal.Decimal
	TaxaMensal decimal.Decimal
	PrazoMeses int
	Ciclo      tabelataxas.CicloLiquidez
	DataInicio time.Time
}

// ResgateAnterior resume um resgate já aprovado sobre a aplicação.
type ResgateAnterior struct {
	Tipo       TipoResgate
	ValorBruto decimal.Decimal
}

// DiasDoCiclo retorna a janela de carência do ciclo em dias corridos.
// Contagem fixa de dias, não meses de calendário.
func DiasDoCiclo(c tabelataxas.CicloLiquidez) int {
	switch c {
	case tabelataxas.Mensal:
		return 30
	case tabelataxas.Semestral:
		return 180
	case tabelataxas.Anual:
		return 365
	case tabelataxas.Bienal:
		return 730
	case tabelataxas.Trienal:
		return 1095
	}
	return 0
}

func diasDecorridos(inicio, hoje time.Time) int {
	if hoje.Before(inicio) {
		return 0
	}
	return int(hoje.Sub(inicio).Hours() / 24)
}

// DataDisponivel informa quando a primeira janela de liquidez abre.
// Exposta para exibição ("disponível a partir de...").
func DataDisponivel(inv Investimento) time.Time {
	return inv.DataInicio.AddDate(0, 0, DiasDoCiclo(inv.Ciclo))
}

// PodeResgatar diz se o tipo de resgate está liberado na data de hoje.
// Parcial e Total nunca esperam janela (mas pagam multa, ver resgate).
func PodeResgatar(inv Investimento, tipo TipoResgate, hoje time.Time) bool {
	switch tipo {
	case Parcial, Total:
		return true
	case DividendosPorPeriodo, RetornoMensal:
		return diasDecorridos(inv.DataInicio, hoje) >= DiasDoCiclo(inv.Ciclo)
	}
	return false
}

// PrincipalDisponivel desconta do principal os resgates que o reduziram.
// Saques de dividendos e de retorno mensal não mexem no principal.
func PrincipalDisponivel(principal decimal.Decimal, anteriores []ResgateAnterior) decimal.Decimal {
	disponivel := principal
	for _, a := range anteriores {
		if a.Tipo == Parcial || a.Tipo == Total {
			disponivel = disponivel.Sub(a.ValorBruto)
		}
	}
	return disponivel
}

// ValorAcumulado calcula quanto o tipo de resgate tem acumulado hoje.
//
// DividendosPorPeriodo paga ciclos completos: principal disponível x taxa
// mensal x meses dos ciclos já fechados. RetornoMensal paga um único mês.
// Para os demais tipos retorna zero (o valor vem do pedido, não do acúmulo).
func ValorAcumulado(inv Investimento, tipo TipoResgate, hoje time.Time, anteriores []ResgateAnterior) decimal.Decimal {
	disponivel := PrincipalDisponivel(inv.Principal, anteriores)

	switch tipo {
	case DividendosPorPeriodo:
		duracao := tabelataxas.MesesDoCiclo(inv.Ciclo)
		if duracao <= 0 {
			return decimal.Zero
		}
		meses := diasDecorridos(inv.DataInicio, hoje) / 30
		ciclosFechados := meses / duracao
		if ciclosFechados <= 0 {
			return decimal.Zero
		}
		return disponivel.Mul(inv.TaxaMensal).Mul(decimal.NewFromInt(int64(duracao * ciclosFechados)))
	case RetornoMensal:
		return disponivel.Mul(inv.TaxaMensal)
	}
	return decimal.Zero
}
