package resgate

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AureaInvest/api-investidor/internal/carencia"
	"github.com/AureaInvest/api-investidor/internal/tabelataxas"
)

func aplicacaoAtiva(principal int64, taxa string) carencia.Investimento {
	return carencia.Investimento{
		Principal:  decimal.NewFromInt(principal),
		TaxaMensal: decimal.RequireFromString(taxa),
		PrazoMeses: 12,
		Ciclo:      tabelataxas.Anual,
		DataInicio: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestResolverParcialAbaixoDoMinimo(t *testing.T) {
	inv := aplicacaoAtiva(10000, "0.015")
	hoje := inv.DataInicio.AddDate(0, 0, 10)

	_, err := Resolver(inv, carencia.Parcial, decimal.NewFromInt(500), hoje, nil)
	var minimo *ErrAbaixoDoMinimo
	if !errors.As(err, &minimo) {
		t.Fatalf("esperava ErrAbaixoDoMinimo, obteve %v", err)
	}
	if !minimo.Minimo.Equal(ValorMinimoParcial) || !minimo.Solicitado.Equal(decimal.NewFromInt(500)) {
		t.Errorf("erro sem contexto: %+v", minimo)
	}
}

func TestResolverParcialAcimaDoDisponivel(t *testing.T) {
	inv := aplicacaoAtiva(10000, "0.015")
	hoje := inv.DataInicio.AddDate(0, 0, 10)
	anteriores := []carencia.ResgateAnterior{{Tipo: carencia.Parcial, ValorBruto: decimal.NewFromInt(8000)}}

	_, err := Resolver(inv, carencia.Parcial, decimal.NewFromInt(3000), hoje, anteriores)
	var insuficiente *ErrSaldoInsuficiente
	if !errors.As(err, &insuficiente) {
		t.Fatalf("esperava ErrSaldoInsuficiente, obteve %v", err)
	}
	if !insuficiente.Disponivel.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("disponível no erro = %s, esperava 2000", insuficiente.Disponivel)
	}
}

func TestResolverParcial(t *testing.T) {
	inv := aplicacaoAtiva(10000, "0.015")
	hoje := inv.DataInicio.AddDate(0, 0, 10)

	res, err := Resolver(inv, carencia.Parcial, decimal.NewFromInt(4000), hoje, nil)
	if err != nil {
		t.Fatalf("Resolver: %v", err)
	}

	if !res.ValorBruto.Equal(decimal.NewFromInt(4000)) {
		t.Errorf("bruto = %s, esperava 4000", res.ValorBruto)
	}
	if !res.Penalidade.Equal(decimal.NewFromInt(400)) {
		t.Errorf("penalidade = %s, esperava 400 (10%%)", res.Penalidade)
	}
	if !res.ValorLiquido.Equal(decimal.NewFromInt(3600)) {
		t.Errorf("líquido = %s, esperava 3600", res.ValorLiquido)
	}
	if !res.PrincipalRestante.Equal(decimal.NewFromInt(6000)) {
		t.Errorf("restante = %s, esperava 6000", res.PrincipalRestante)
	}
	// novo retorno mensal recalculado sobre o que sobrou
	if !res.NovoRetornoMensal.Equal(decimal.NewFromInt(90)) {
		t.Errorf("novo retorno mensal = %s, esperava 90", res.NovoRetornoMensal)
	}
}

// Conservação: restante + bruto = disponível antes do resgate.
func TestResolverParcialConservaPrincipal(t *testing.T) {
	inv := aplicacaoAtiva(50000, "0.017")
	hoje := inv.DataInicio.AddDate(0, 0, 10)
	anteriores := []carencia.ResgateAnterior{{Tipo: carencia.Parcial, ValorBruto: decimal.NewFromInt(7500)}}

	disponivel := carencia.PrincipalDisponivel(inv.Principal, anteriores)
	res, err := Resolver(inv, carencia.Parcial, decimal.NewFromInt(12000), hoje, anteriores)
	if err != nil {
		t.Fatalf("Resolver: %v", err)
	}
	if soma := res.PrincipalRestante.Add(res.ValorBruto); !soma.Equal(disponivel) {
		t.Errorf("restante + bruto = %s, esperava %s", soma, disponivel)
	}
}

func TestResolverTotalComResgateAnterior(t *testing.T) {
	inv := aplicacaoAtiva(50000, "0.015")
	hoje := inv.DataInicio.AddDate(0, 0, 10)
	anteriores := []carencia.ResgateAnterior{{Tipo: carencia.Parcial, ValorBruto: decimal.NewFromInt(10000)}}

	res, err := Resolver(inv, carencia.Total, decimal.Zero, hoje, anteriores)
	if err != nil {
		t.Fatalf("Resolver: %v", err)
	}

	if !res.ValorBruto.Equal(decimal.NewFromInt(40000)) {
		t.Errorf("bruto = %s, esperava 40000", res.ValorBruto)
	}
	if !res.Penalidade.Equal(decimal.NewFromInt(8000)) {
		t.Errorf("penalidade = %s, esperava 8000 (20%%)", res.Penalidade)
	}
	if !res.ValorLiquido.Equal(decimal.NewFromInt(32000)) {
		t.Errorf("líquido = %s, esperava 32000", res.ValorLiquido)
	}
	if !res.PrincipalRestante.IsZero() {
		t.Errorf("restante = %s, esperava 0", res.PrincipalRestante)
	}
}

func TestResolverDividendosAntesDaJanela(t *testing.T) {
	inv := aplicacaoAtiva(10000, "0.015")
	hoje := inv.DataInicio.AddDate(0, 0, 100) // ciclo anual abre em 365 dias

	_, err := Resolver(inv, carencia.DividendosPorPeriodo, decimal.Zero, hoje, nil)
	var elegibilidade *ErrAindaNaoElegivel
	if !errors.As(err, &elegibilidade) {
		t.Fatalf("esperava ErrAindaNaoElegivel, obteve %v", err)
	}
	if esperado := inv.DataInicio.AddDate(0, 0, 365); !elegibilidade.DisponivelEm.Equal(esperado) {
		t.Errorf("DisponivelEm = %v, esperava %v", elegibilidade.DisponivelEm, esperado)
	}
}

func TestResolverDividendosSemPenalidade(t *testing.T) {
	inv := aplicacaoAtiva(10000, "0.015")
	hoje := inv.DataInicio.AddDate(0, 0, 370)

	res, err := Resolver(inv, carencia.DividendosPorPeriodo, decimal.Zero, hoje, nil)
	if err != nil {
		t.Fatalf("Resolver: %v", err)
	}

	// 1 ciclo anual fechado: 10000 x 0,015 x 12
	if !res.ValorBruto.Equal(decimal.NewFromInt(1800)) {
		t.Errorf("bruto = %s, esperava 1800", res.ValorBruto)
	}
	if !res.Penalidade.IsZero() {
		t.Errorf("dividendos não têm penalidade, obteve %s", res.Penalidade)
	}
	if !res.PrincipalRestante.Equal(inv.Principal) {
		t.Errorf("dividendos não reduzem o principal: restante = %s", res.PrincipalRestante)
	}
}

func TestResolverRetornoMensal(t *testing.T) {
	inv := aplicacaoAtiva(10000, "0.015")
	hoje := inv.DataInicio.AddDate(0, 0, 370)

	res, err := Resolver(inv, carencia.RetornoMensal, decimal.Zero, hoje, nil)
	if err != nil {
		t.Fatalf("Resolver: %v", err)
	}
	if !res.ValorBruto.Equal(decimal.NewFromInt(150)) {
		t.Errorf("bruto = %s, esperava 150 (um mês simples)", res.ValorBruto)
	}
	if !res.ValorLiquido.Equal(res.ValorBruto) {
		t.Errorf("líquido = %s, esperava igual ao bruto", res.ValorLiquido)
	}
}

func TestResolverTipoDesconhecido(t *testing.T) {
	inv := aplicacaoAtiva(10000, "0.015")
	if _, err := Resolver(inv, "Antecipado", decimal.Zero, time.Now(), nil); err == nil {
		t.Error("tipo desconhecido deveria falhar")
	}
}
