// internal/investimento/dto.go
package investimento

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/AureaInvest/api-investidor/internal/resgate"
)

type CriarInvestimentoDTO struct {
	Principal  decimal.Decimal `json:"principal"`
	PrazoMeses int             `json:"prazoMeses"`
	Ciclo      string          `json:"cicloLiquidez"`
	DataInicio string          `json:"dataInicio"` // RFC3339; vazio usa a data atual
}

// ProjecaoDTO junta a projeção de retorno com a situação das janelas de
// liquidez, tudo que a tela de detalhe da aplicação exibe.
type ProjecaoDTO struct {
	RetornoMensalSimples decimal.Decimal `json:"retornoMensalSimples"`
	RetornoTotal         decimal.Decimal `json:"retornoTotal"`
	ValorFinal           decimal.Decimal `json:"valorFinal"`

	PrincipalDisponivel  decimal.Decimal `json:"principalDisponivel"`
	JanelaAberta         bool            `json:"janelaAberta"`
	DisponivelEm         time.Time       `json:"disponivelEm"`
	DividendosAcumulados decimal.Decimal `json:"dividendosAcumulados"`
	RetornoMensalAtual   decimal.Decimal `json:"retornoMensalAtual"`
}

type SimularResgateDTO struct {
	Tipo  string          `json:"tipo"`
	Valor decimal.Decimal `json:"valor"` // usado apenas no resgate parcial
}

// ResgateCriadoDTO devolve o registro gravado junto com o resultado do
// cálculo, para a tela de confirmação.
type ResgateCriadoDTO struct {
	Resgate   resgate.Resgate   `json:"resgate"`
	Resultado resgate.Resultado `json:"resultado"`
}
