// internal/cdi/comparador.go
package cdi

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Comparacao confronta o rendimento projetado do produto com o benchmark
// (CDI) sobre o horizonte restante da aplicação.
type Comparacao struct {
	RetornoProjetado decimal.Decimal `json:"retornoProjetado"`
	RetornoBenchmark decimal.Decimal `json:"retornoBenchmark"`
	Diferenca        decimal.Decimal `json:"diferenca"`
}

var um = decimal.NewFromInt(1)

// MesesRestantes conta blocos de 30 dias entre hoje e o vencimento,
// arredondando para cima; nunca negativo.
func MesesRestantes(vencimento, hoje time.Time) int {
	horas := vencimento.Sub(hoje).Hours()
	if horas <= 0 {
		return 0
	}
	return int(math.Ceil(horas / (24 * 30)))
}

// Comparar projeta o custo de oportunidade de resgatar agora: quanto o
// valor renderia no produto versus no benchmark até o vencimento, com
// juros compostos verdadeiros. Não há segmentação por ciclo de liquidez
// porque esta é uma projeção teórica, não o cronograma do produto.
// Horizonte zero devolve tudo zerado.
func Comparar(valor, taxaMensal, taxaBenchmark decimal.Decimal, mesesRestantes int) Comparacao {
	if mesesRestantes <= 0 {
		return Comparacao{
			RetornoProjetado: decimal.Zero,
			RetornoBenchmark: decimal.Zero,
			Diferenca:        decimal.Zero,
		}
	}

	projetado := retornoComposto(valor, taxaMensal, mesesRestantes)
	benchmark := retornoComposto(valor, taxaBenchmark, mesesRestantes)
	return Comparacao{
		RetornoProjetado: projetado,
		RetornoBenchmark: benchmark,
		Diferenca:        projetado.Sub(benchmark),
	}
}

func retornoComposto(valor, taxa decimal.Decimal, meses int) decimal.Decimal {
	return valor.Mul(um.Add(taxa).Pow(decimal.NewFromInt(int64(meses))).Sub(um))
}
