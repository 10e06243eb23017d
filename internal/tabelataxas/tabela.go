// internal/tabelataxas/tabela.go
package tabelataxas

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
)

// CicloLiquidez define a cadência em que o rendimento acumulado fica
// disponível para saque.
type CicloLiquidez string

const (
	Mensal    CicloLiquidez = "Mensal"
	Semestral CicloLiquidez = "Semestral"
	Anual     CicloLiquidez = "Anual"
	Bienal    CicloLiquidez = "Bienal"
	Trienal   CicloLiquidez = "Trienal"
)

// MesesDoCiclo retorna a duração do ciclo em meses. Retorna 0 para ciclo
// desconhecido; os chamadores tratam 0 como "sem segmentação por ciclo".
func MesesDoCiclo(c CicloLiquidez) int {
	switch c {
	case Mensal:
		return 1
	case Semestral:
		return 6
	case Anual:
		return 12
	case Bienal:
		return 24
	case Trienal:
		return 36
	}
	return 0
}

// PrazosDisponiveis lista os prazos de carência aceitos pela plataforma, em meses.
var PrazosDisponiveis = []int{3, 6, 12, 24, 36}

// ciclosPorPrazo: prazos mais longos liberam ciclos mais longos.
// Cada prazo herda os ciclos do anterior e ganha um a mais.
var ciclosPorPrazo = map[int][]CicloLiquidez{
	3:  {Mensal},
	6:  {Mensal, Semestral},
	12: {Mensal, Semestral, Anual},
	24: {Mensal, Semestral, Anual, Bienal},
	36: {Mensal, Semestral, Anual, Bienal, Trienal},
}

// taxasMensais guarda a taxa mensal de cada combinação prazo x ciclo.
// A taxa cresce com o prazo e com o ciclo (prêmio de liquidez): quem trava
// o dinheiro por mais tempo e saca com menos frequência rende mais.
var taxasMensais = map[int]map[CicloLiquidez]decimal.Decimal{
	3: {
		Mensal: decimal.RequireFromString("0.010"),
	},
	6: {
		Mensal:    decimal.RequireFromString("0.011"),
		Semestral: decimal.RequireFromString("0.012"),
	},
	12: {
		Mensal:    decimal.RequireFromString("0.012"),
		Semestral: decimal.RequireFromString("0.013"),
		Anual:     decimal.RequireFromString("0.015"),
	},
	24: {
		Mensal:    decimal.RequireFromString("0.013"),
		Semestral: decimal.RequireFromString("0.015"),
		Anual:     decimal.RequireFromString("0.017"),
		Bienal:    decimal.RequireFromString("0.019"),
	},
	36: {
		Mensal:    decimal.RequireFromString("0.015"),
		Semestral: decimal.RequireFromString("0.017"),
		Anual:     decimal.RequireFromString("0.019"),
		Bienal:    decimal.RequireFromString("0.021"),
		Trienal:   decimal.RequireFromString("0.025"),
	},
}

// ErrCombinacaoInvalida indica que o ciclo de liquidez não está liberado
// para o prazo de carência escolhido.
type ErrCombinacaoInvalida struct {
	PrazoMeses int
	Ciclo      CicloLiquidez
}

func (e *ErrCombinacaoInvalida) Error() string {
	return fmt.Sprintf("ciclo de liquidez %q não disponível para o prazo de %d meses", e.Ciclo, e.PrazoMeses)
}

// Config controla o modo de resolução de taxas. Com TaxaFixa ligado, toda
// combinação válida recebe ValorTaxaFixa (contas com taxa negociada por
// tier); desligado, vale a matriz padrão.
type Config struct {
	TaxaFixa      bool
	ValorTaxaFixa decimal.Decimal
}

// ConfigDoAmbiente monta a Config a partir das variáveis TAXA_FIXA e
// TAXA_FIXA_VALOR. Valores ausentes ou inválidos caem no modo matriz.
func ConfigDoAmbiente() Config {
	if os.Getenv("TAXA_FIXA") != "true" {
		return Config{}
	}
	v, err := decimal.NewFromString(os.Getenv("TAXA_FIXA_VALOR"))
	if err != nil || !v.IsPositive() {
		return Config{}
	}
	return Config{TaxaFixa: true, ValorTaxaFixa: v}
}

// CiclosLegais retorna os ciclos de liquidez permitidos para o prazo.
func CiclosLegais(prazoMeses int) []CicloLiquidez {
	return ciclosPorPrazo[prazoMeses]
}

// CombinacaoValida informa se o ciclo está liberado para o prazo.
func CombinacaoValida(prazoMeses int, ciclo CicloLiquidez) bool {
	for _, c := range ciclosPorPrazo[prazoMeses] {
		if c == ciclo {
			return true
		}
	}
	return false
}

// ResolverTaxaMensal resolve a taxa mensal da combinação prazo x ciclo.
// A validação da combinação vale também no modo de taxa fixa.
func ResolverTaxaMensal(cfg Config, prazoMeses int, ciclo CicloLiquidez) (decimal.Decimal, error) {
	if !CombinacaoValida(prazoMeses, ciclo) {
		return decimal.Zero, &ErrCombinacaoInvalida{PrazoMeses: prazoMeses, Ciclo: ciclo}
	}
	if cfg.TaxaFixa {
		return cfg.ValorTaxaFixa, nil
	}
	return taxasMensais[prazoMeses][ciclo], nil
}
