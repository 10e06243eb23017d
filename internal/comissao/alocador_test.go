package comissao

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AureaInvest/api-investidor/internal/tabelataxas"
)

func uintPtr(v uint) *uint { return &v }

func hierarquiaCompleta() Hierarquia {
	return Hierarquia{
		InvestidorID: uintPtr(1),
		EscritorioID: uintPtr(2),
		AssessorID:   uintPtr(3),
	}
}

// volumes abaixo de qualquer faixa de bônus
func semBonus(h Hierarquia) VolumesCaptados {
	v := VolumesCaptados{}
	for _, id := range []*uint{h.InvestidorID, h.EscritorioID, h.AssessorID} {
		if id != nil {
			v[*id] = decimal.NewFromInt(100000)
		}
	}
	return v
}

func TestAlocarCronogramaBase(t *testing.T) {
	h := hierarquiaCompleta()
	p := Pagamento{
		Valor:      decimal.NewFromInt(1000000),
		Data:       time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
		PrazoMeses: 3,
		Ciclo:      tabelataxas.Mensal,
	}

	parcelas := Alocar(p, h, semBonus(h))
	if len(parcelas) != 3 {
		t.Fatalf("esperava 3 parcelas, obteve %d", len(parcelas))
	}

	for i, parcela := range parcelas {
		if !parcela.CotaInvestidor.Equal(decimal.NewFromInt(20000)) {
			t.Errorf("parcela %d: cota investidor = %s, esperava 20000 (2%%)", i, parcela.CotaInvestidor)
		}
		if !parcela.CotaEscritorio.Equal(decimal.NewFromInt(10000)) {
			t.Errorf("parcela %d: cota escritório = %s, esperava 10000 (1%%)", i, parcela.CotaEscritorio)
		}
		if !parcela.CotaAssessor.Equal(decimal.NewFromInt(30000)) {
			t.Errorf("parcela %d: cota assessor = %s, esperava 30000 (3%%)", i, parcela.CotaAssessor)
		}
	}
}

func TestAlocarMesesContinuosSemPulos(t *testing.T) {
	h := hierarquiaCompleta()
	p := Pagamento{
		Valor:      decimal.NewFromInt(10000),
		Data:       time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC),
		PrazoMeses: 4,
	}

	parcelas := Alocar(p, h, semBonus(h))
	esperado := []struct{ ano, mes int }{
		{2025, 11}, {2025, 12}, {2026, 1}, {2026, 2},
	}
	if len(parcelas) != len(esperado) {
		t.Fatalf("esperava %d parcelas, obteve %d", len(esperado), len(parcelas))
	}
	for i, e := range esperado {
		if parcelas[i].PeriodoAno != e.ano || parcelas[i].PeriodoMes != e.mes {
			t.Errorf("parcela %d: %d/%d, esperava %d/%d",
				i, parcelas[i].PeriodoMes, parcelas[i].PeriodoAno, e.mes, e.ano)
		}
	}
}

func TestAlocarPapelAusenteNaoRecebe(t *testing.T) {
	h := Hierarquia{InvestidorID: uintPtr(1), AssessorID: uintPtr(3)} // sem escritório
	p := Pagamento{
		Valor:      decimal.NewFromInt(100000),
		Data:       time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		PrazoMeses: 2,
	}

	parcelas := Alocar(p, h, semBonus(h))
	for i, parcela := range parcelas {
		if !parcela.CotaEscritorio.IsZero() {
			t.Errorf("parcela %d: escritório ausente deveria receber 0, obteve %s", i, parcela.CotaEscritorio)
		}
		if parcela.CotaInvestidor.IsZero() || parcela.CotaAssessor.IsZero() {
			t.Errorf("parcela %d: papéis presentes não podem zerar", i)
		}
	}
}

func TestAlocarFaixasDeBonus(t *testing.T) {
	casos := []struct {
		nome         string
		volume       int64
		cotaEsperada int64 // cota do investidor sobre pagamento de 100000
	}{
		{"sem faixa", 499999, 2000},       // 2%
		{"faixa 500 mil", 500000, 3000},   // 2% + 1%
		{"faixa 1 milhão", 1000000, 5000}, // 2% + 3%, substitui a faixa menor
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			h := Hierarquia{InvestidorID: uintPtr(1)}
			p := Pagamento{
				Valor:      decimal.NewFromInt(100000),
				Data:       time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
				PrazoMeses: 1,
			}
			volumes := VolumesCaptados{1: decimal.NewFromInt(c.volume)}

			parcelas := Alocar(p, h, volumes)
			if len(parcelas) != 1 {
				t.Fatalf("esperava 1 parcela, obteve %d", len(parcelas))
			}
			if !parcelas[0].CotaInvestidor.Equal(decimal.NewFromInt(c.cotaEsperada)) {
				t.Errorf("cota = %s, esperava %d", parcelas[0].CotaInvestidor, c.cotaEsperada)
			}
		})
	}
}

// Sem volume acumulado informado, o pagamento é testado isoladamente
// contra as faixas (comportamento original da plataforma).
func TestAlocarSemVolumeUsaPagamentoIsolado(t *testing.T) {
	h := Hierarquia{InvestidorID: uintPtr(1)}
	p := Pagamento{
		Valor:      decimal.NewFromInt(600000),
		Data:       time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		PrazoMeses: 1,
	}

	parcelas := Alocar(p, h, nil)
	// 600000 x (2% + 1%) = 18000
	if !parcelas[0].CotaInvestidor.Equal(decimal.NewFromInt(18000)) {
		t.Errorf("cota = %s, esperava 18000", parcelas[0].CotaInvestidor)
	}
}

func TestAlocarEntradasDegeneradas(t *testing.T) {
	h := hierarquiaCompleta()
	data := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	casos := []Pagamento{
		{Valor: decimal.Zero, Data: data, PrazoMeses: 12},
		{Valor: decimal.NewFromInt(-500), Data: data, PrazoMeses: 12},
		{Valor: decimal.NewFromInt(10000), Data: data, PrazoMeses: 0},
		{Valor: decimal.NewFromInt(10000), Data: data, PrazoMeses: -3},
	}

	for i, p := range casos {
		if parcelas := Alocar(p, h, nil); len(parcelas) != 0 {
			t.Errorf("caso %d: entrada degenerada deveria render cronograma vazio, obteve %d parcelas", i, len(parcelas))
		}
	}
}
