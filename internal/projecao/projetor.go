// internal/projecao/projetor.go
package projecao

import (
	"github.com/shopspring/decimal"

	"github.com/AureaInvest/api-investidor/internal/tabelataxas"
)

// ProjecaoRetorno agrega os três números exibidos ao investidor.
type ProjecaoRetorno struct {
	RetornoMensalSimples decimal.Decimal `json:"retornoMensalSimples"`
	RetornoTotal         decimal.Decimal `json:"retornoTotal"`
	ValorFinal           decimal.Decimal `json:"valorFinal"`
}

var um = decimal.NewFromInt(1)

// Projetar calcula o retorno mensal simples e o retorno total composto por
// ciclo de liquidez.
//
// O rendimento compõe dentro de um ciclo (só é pago na virada do ciclo),
// mas não é reinvestido de um ciclo para o outro: cada ciclo rende sobre o
// principal original e os resultados são somados. Isso modela o produto de
// pagamento periódico, não capitalização plena até o vencimento.
func Projetar(principal, taxaMensal decimal.Decimal, prazoMeses int, ciclo tabelataxas.CicloLiquidez) ProjecaoRetorno {
	simples := principal.Mul(taxaMensal)
	base := um.Add(taxaMensal)

	var total decimal.Decimal
	duracao := tabelataxas.MesesDoCiclo(ciclo)
	if duracao <= 0 {
		// Ciclo desconhecido: juros compostos simples sobre o prazo inteiro.
		total = principal.Mul(base.Pow(decimal.NewFromInt(int64(prazoMeses))).Sub(um))
	} else {
		ciclosCompletos := prazoMeses / duracao
		resto := prazoMeses % duracao

		fatorCiclo := base.Pow(decimal.NewFromInt(int64(duracao)))
		total = principal.Mul(fatorCiclo.Sub(um)).Mul(decimal.NewFromInt(int64(ciclosCompletos)))
		if resto > 0 {
			total = total.Add(principal.Mul(base.Pow(decimal.NewFromInt(int64(resto))).Sub(um)))
		}
	}

	return ProjecaoRetorno{
		RetornoMensalSimples: simples,
		RetornoTotal:         total,
		ValorFinal:           principal.Add(total),
	}
}
