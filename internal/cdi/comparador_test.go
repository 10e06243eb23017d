package cdi

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestMesesRestantes(t *testing.T) {
	hoje := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	casos := []struct {
		nome     string
		dias     int
		esperado int
	}{
		{"vencido", -10, 0},
		{"vence hoje", 0, 0},
		{"menos de um bloco", 12, 1},
		{"bloco exato", 30, 1},
		{"um dia além do bloco", 31, 2},
		{"um ano", 360, 12},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			vencimento := hoje.AddDate(0, 0, c.dias)
			if got := MesesRestantes(vencimento, hoje); got != c.esperado {
				t.Errorf("MesesRestantes(+%dd) = %d, esperava %d", c.dias, got, c.esperado)
			}
		})
	}
}

func TestCompararHorizonteZero(t *testing.T) {
	cmp := Comparar(decimal.NewFromInt(10000), decimal.RequireFromString("0.015"), decimal.RequireFromString("0.011"), 0)

	if !cmp.RetornoProjetado.IsZero() || !cmp.RetornoBenchmark.IsZero() || !cmp.Diferenca.IsZero() {
		t.Errorf("horizonte zero deveria zerar tudo, obteve %+v", cmp)
	}
}

func TestCompararJurosCompostos(t *testing.T) {
	valor := decimal.NewFromInt(10000)
	taxa := decimal.RequireFromString("0.01")

	cmp := Comparar(valor, taxa, decimal.Zero, 2)

	// 10000 x ((1,01)^2 - 1) = 201, não 200: juros compostos de verdade
	if !cmp.RetornoProjetado.Equal(decimal.NewFromInt(201)) {
		t.Errorf("retorno projetado = %s, esperava 201", cmp.RetornoProjetado)
	}
	if !cmp.RetornoBenchmark.IsZero() {
		t.Errorf("benchmark a taxa zero = %s, esperava 0", cmp.RetornoBenchmark)
	}
}

func TestCompararDiferenca(t *testing.T) {
	valor := decimal.NewFromInt(50000)
	produto := decimal.RequireFromString("0.015")
	benchmark := decimal.RequireFromString("0.011")

	cmp := Comparar(valor, produto, benchmark, 12)

	if esperado := cmp.RetornoProjetado.Sub(cmp.RetornoBenchmark); !cmp.Diferenca.Equal(esperado) {
		t.Errorf("diferença = %s, esperava %s", cmp.Diferenca, esperado)
	}
	if !cmp.Diferenca.IsPositive() {
		t.Errorf("produto acima do benchmark deveria dar diferença positiva, obteve %s", cmp.Diferenca)
	}

	// invertendo as taxas o sinal inverte
	invertido := Comparar(valor, benchmark, produto, 12)
	if !invertido.Diferenca.IsNegative() {
		t.Errorf("produto abaixo do benchmark deveria dar diferença negativa, obteve %s", invertido.Diferenca)
	}
}
