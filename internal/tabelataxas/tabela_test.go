package tabelataxas

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCiclosLegaisSaoSupersetsCrescentes(t *testing.T) {
	prazos := PrazosDisponiveis
	for i := 1; i < len(prazos); i++ {
		anterior := CiclosLegais(prazos[i-1])
		atual := CiclosLegais(prazos[i])

		if len(atual) != len(anterior)+1 {
			t.Errorf("prazo %d: esperava %d ciclos, obteve %d", prazos[i], len(anterior)+1, len(atual))
		}
		for _, c := range anterior {
			if !CombinacaoValida(prazos[i], c) {
				t.Errorf("prazo %d deveria herdar o ciclo %q do prazo %d", prazos[i], c, prazos[i-1])
			}
		}
	}
}

func TestTaxasCrescemComPrazo(t *testing.T) {
	ciclos := []CicloLiquidez{Mensal, Semestral, Anual, Bienal, Trienal}
	cfg := Config{}

	for _, ciclo := range ciclos {
		anterior := decimal.Zero
		for _, prazo := range PrazosDisponiveis {
			if !CombinacaoValida(prazo, ciclo) {
				continue
			}
			taxa, err := ResolverTaxaMensal(cfg, prazo, ciclo)
			if err != nil {
				t.Fatalf("ResolverTaxaMensal(%d, %q): %v", prazo, ciclo, err)
			}
			if taxa.LessThan(anterior) {
				t.Errorf("taxa de %d meses/%q (%s) menor que a do prazo anterior (%s)",
					prazo, ciclo, taxa, anterior)
			}
			anterior = taxa
		}
	}
}

func TestTaxasCrescemComCiclo(t *testing.T) {
	cfg := Config{}
	for _, prazo := range PrazosDisponiveis {
		anterior := decimal.Zero
		for _, ciclo := range CiclosLegais(prazo) {
			taxa, err := ResolverTaxaMensal(cfg, prazo, ciclo)
			if err != nil {
				t.Fatalf("ResolverTaxaMensal(%d, %q): %v", prazo, ciclo, err)
			}
			if taxa.LessThan(anterior) {
				t.Errorf("prazo %d: taxa do ciclo %q (%s) menor que a do ciclo anterior (%s)",
					prazo, ciclo, taxa, anterior)
			}
			anterior = taxa
		}
	}
}

func TestCombinacaoInvalida(t *testing.T) {
	casos := []struct {
		prazo int
		ciclo CicloLiquidez
	}{
		{3, Semestral},
		{3, Trienal},
		{6, Anual},
		{12, Bienal},
		{24, Trienal},
		{7, Mensal}, // prazo fora da tabela
	}

	for _, c := range casos {
		_, err := ResolverTaxaMensal(Config{}, c.prazo, c.ciclo)
		var combinacao *ErrCombinacaoInvalida
		if !errors.As(err, &combinacao) {
			t.Errorf("ResolverTaxaMensal(%d, %q): esperava ErrCombinacaoInvalida, obteve %v", c.prazo, c.ciclo, err)
			continue
		}
		if combinacao.PrazoMeses != c.prazo || combinacao.Ciclo != c.ciclo {
			t.Errorf("erro sem contexto: %+v", combinacao)
		}
	}
}

func TestModoTaxaFixa(t *testing.T) {
	cfg := Config{TaxaFixa: true, ValorTaxaFixa: decimal.RequireFromString("0.02")}

	taxa, err := ResolverTaxaMensal(cfg, 12, Anual)
	if err != nil {
		t.Fatalf("ResolverTaxaMensal: %v", err)
	}
	if !taxa.Equal(cfg.ValorTaxaFixa) {
		t.Errorf("esperava taxa fixa %s, obteve %s", cfg.ValorTaxaFixa, taxa)
	}

	// mesmo no modo fixo a combinação precisa ser válida
	if _, err := ResolverTaxaMensal(cfg, 3, Anual); err == nil {
		t.Error("combinação inválida deveria falhar também no modo de taxa fixa")
	}
}

func TestMesesDoCiclo(t *testing.T) {
	casos := map[CicloLiquidez]int{
		Mensal:    1,
		Semestral: 6,
		Anual:     12,
		Bienal:    24,
		Trienal:   36,
	}
	for ciclo, esperado := range casos {
		if got := MesesDoCiclo(ciclo); got != esperado {
			t.Errorf("MesesDoCiclo(%q) = %d, esperava %d", ciclo, got, esperado)
		}
	}
	if got := MesesDoCiclo("Quinzenal"); got != 0 {
		t.Errorf("ciclo desconhecido deveria valer 0, obteve %d", got)
	}
}
