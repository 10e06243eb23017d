// internal/comissao/dto.go
package comissao

import "github.com/shopspring/decimal"

type CriarComissaoDTO struct {
	Valor         decimal.Decimal `json:"valor"`
	DataPagamento string          `json:"dataPagamento"`
	PrazoMeses    int             `json:"prazoMeses"`
	Ciclo         string          `json:"cicloLiquidez"`

	// Opcionais: quando ausentes, a hierarquia é lida do cadastro do investidor.
	EscritorioID *uint `json:"escritorioId"`
	AssessorID   *uint `json:"assessorId"`
}
