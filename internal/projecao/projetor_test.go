package projecao

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/AureaInvest/api-investidor/internal/tabelataxas"
)

func TestProjetarRetornoMensalSimples(t *testing.T) {
	principal := decimal.NewFromInt(50000)
	taxa := decimal.RequireFromString("0.013")

	proj := Projetar(principal, taxa, 24, tabelataxas.Mensal)
	esperado := principal.Mul(taxa)
	if !proj.RetornoMensalSimples.Equal(esperado) {
		t.Errorf("retorno mensal simples = %s, esperava %s", proj.RetornoMensalSimples, esperado)
	}
}

// Cenário de referência: 100 mil por 12 meses no ciclo anual a 2,5% a.m.
// rende um ciclo inteiro composto: 100000 x ((1,025)^12 - 1) ≈ 34489.
func TestProjetarCicloAnualDozeMeses(t *testing.T) {
	proj := Projetar(decimal.NewFromInt(100000), decimal.RequireFromString("0.025"), 12, tabelataxas.Anual)

	if got := proj.RetornoTotal.Round(0); !got.Equal(decimal.NewFromInt(34489)) {
		t.Errorf("retorno total = %s, esperava ≈ 34489", proj.RetornoTotal)
	}
	if got := proj.ValorFinal.Round(0); !got.Equal(decimal.NewFromInt(134489)) {
		t.Errorf("valor final = %s, esperava ≈ 134489", proj.ValorFinal)
	}
}

// Quando o prazo é múltiplo exato do ciclo não há termo de resto: o total
// é só ciclosCompletos x principal x (fatorCiclo - 1).
func TestProjetarPrazoMultiploDoCiclo(t *testing.T) {
	principal := decimal.NewFromInt(20000)
	taxa := decimal.RequireFromString("0.013")

	proj := Projetar(principal, taxa, 12, tabelataxas.Semestral)

	um := decimal.NewFromInt(1)
	fatorCiclo := um.Add(taxa).Pow(decimal.NewFromInt(6))
	esperado := principal.Mul(fatorCiclo.Sub(um)).Mul(decimal.NewFromInt(2))

	if !proj.RetornoTotal.Equal(esperado) {
		t.Errorf("retorno total = %s, esperava %s", proj.RetornoTotal, esperado)
	}
}

// O resto do prazo que não fecha um ciclo rende composto só pelos meses
// restantes, somado por fora.
func TestProjetarPrazoComResto(t *testing.T) {
	principal := decimal.NewFromInt(10000)
	taxa := decimal.RequireFromString("0.015")

	// 36 meses em ciclo bienal: 1 ciclo completo + 12 meses de resto
	proj := Projetar(principal, taxa, 36, tabelataxas.Bienal)

	um := decimal.NewFromInt(1)
	base := um.Add(taxa)
	cicloCompleto := principal.Mul(base.Pow(decimal.NewFromInt(24)).Sub(um))
	resto := principal.Mul(base.Pow(decimal.NewFromInt(12)).Sub(um))

	if esperado := cicloCompleto.Add(resto); !proj.RetornoTotal.Equal(esperado) {
		t.Errorf("retorno total = %s, esperava %s", proj.RetornoTotal, esperado)
	}
}

// Ciclo desconhecido cai em juros compostos planos sobre o prazo inteiro.
func TestProjetarCicloDesconhecido(t *testing.T) {
	principal := decimal.NewFromInt(10000)
	taxa := decimal.RequireFromString("0.01")

	proj := Projetar(principal, taxa, 10, "Quinzenal")

	um := decimal.NewFromInt(1)
	esperado := principal.Mul(um.Add(taxa).Pow(decimal.NewFromInt(10)).Sub(um))
	if !proj.RetornoTotal.Equal(esperado) {
		t.Errorf("retorno total = %s, esperava %s", proj.RetornoTotal, esperado)
	}
}

// Função pura: duas chamadas idênticas produzem saída idêntica.
func TestProjetarDeterministico(t *testing.T) {
	principal := decimal.NewFromInt(123456)
	taxa := decimal.RequireFromString("0.017")

	a := Projetar(principal, taxa, 24, tabelataxas.Anual)
	b := Projetar(principal, taxa, 24, tabelataxas.Anual)

	if !a.RetornoMensalSimples.Equal(b.RetornoMensalSimples) ||
		!a.RetornoTotal.Equal(b.RetornoTotal) ||
		!a.ValorFinal.Equal(b.ValorFinal) {
		t.Errorf("projeções divergentes para entradas iguais: %+v != %+v", a, b)
	}
}
