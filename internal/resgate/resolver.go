// internal/resgate/resolver.go
package resgate

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AureaInvest/api-investidor/internal/carencia"
)

// ValorMinimoParcial é o piso de um resgate parcial, em reais.
var ValorMinimoParcial = decimal.NewFromInt(1000)

// Multas sobre o valor bruto para saques que quebram a carência.
var (
	multaParcial = decimal.RequireFromString("0.10")
	multaTotal   = decimal.RequireFromString("0.20")
)

// Resultado é o desfecho financeiro de um pedido de resgate.
type Resultado struct {
	ValorBruto        decimal.Decimal `json:"valorBruto"`
	Penalidade        decimal.Decimal `json:"penalidade"`
	ValorLiquido      decimal.Decimal `json:"valorLiquido"`
	PrincipalRestante decimal.Decimal `json:"principalRestante"`
	NovoRetornoMensal decimal.Decimal `json:"novoRetornoMensal"`
}

// Resolver calcula o valor bruto, a multa e o valor líquido de um resgate.
//
// Função pura sobre o retrato do investimento e dos resgates anteriores;
// gravar o registro resultante (e serializar pedidos concorrentes sobre a
// mesma aplicação) é responsabilidade do chamador.
func Resolver(inv carencia.Investimento, tipo carencia.TipoResgate, valorSolicitado decimal.Decimal, hoje time.Time, anteriores []carencia.ResgateAnterior) (*Resultado, error) {
	disponivel := carencia.PrincipalDisponivel(inv.Principal, anteriores)

	var bruto, penalidade, restante decimal.Decimal
	switch tipo {
	case carencia.DividendosPorPeriodo, carencia.RetornoMensal:
		if !carencia.PodeResgatar(inv, tipo, hoje) {
			return nil, &ErrAindaNaoElegivel{Tipo: tipo, DisponivelEm: carencia.DataDisponivel(inv)}
		}
		bruto = carencia.ValorAcumulado(inv, tipo, hoje, anteriores)
		penalidade = decimal.Zero
		restante = disponivel

	case carencia.Parcial:
		if valorSolicitado.LessThan(ValorMinimoParcial) {
			return nil, &ErrAbaixoDoMinimo{Solicitado: valorSolicitado, Minimo: ValorMinimoParcial}
		}
		if valorSolicitado.GreaterThan(disponivel) {
			return nil, &ErrSaldoInsuficiente{Solicitado: valorSolicitado, Disponivel: disponivel}
		}
		bruto = valorSolicitado
		penalidade = bruto.Mul(multaParcial)
		restante = disponivel.Sub(bruto)

	case carencia.Total:
		bruto = disponivel
		penalidade = bruto.Mul(multaTotal)
		restante = decimal.Zero

	default:
		return nil, fmt.Errorf("tipo de resgate desconhecido: %q", tipo)
	}

	return &Resultado{
		ValorBruto:        bruto,
		Penalidade:        penalidade,
		ValorLiquido:      bruto.Sub(penalidade),
		PrincipalRestante: restante,
		NovoRetornoMensal: restante.Mul(inv.TaxaMensal),
	}, nil
}
