// internal/resgate/erros.go
package resgate

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AureaInvest/api-investidor/internal/carencia"
)

// ErrSaldoInsuficiente: o pedido excede o principal ainda disponível.
type ErrSaldoInsuficiente struct {
	Solicitado decimal.Decimal
	Disponivel decimal.Decimal
}

func (e *ErrSaldoInsuficiente) Error() string {
	return fmt.Sprintf("valor solicitado (%s) excede o principal disponível (%s)",
		e.Solicitado.StringFixed(2), e.Disponivel.StringFixed(2))
}

// ErrAbaixoDoMinimo: resgates parciais têm piso de valor.
type ErrAbaixoDoMinimo struct {
	Solicitado decimal.Decimal
	Minimo     decimal.Decimal
}

func (e *ErrAbaixoDoMinimo) Error() string {
	return fmt.Sprintf("valor solicitado (%s) abaixo do mínimo de %s para resgate parcial",
		e.Solicitado.StringFixed(2), e.Minimo.StringFixed(2))
}

// ErrAindaNaoElegivel: a janela de liquidez do tipo pedido ainda não abriu.
// DisponivelEm é exposta para a mensagem ao investidor.
type ErrAindaNaoElegivel struct {
	Tipo         carencia.TipoResgate
	DisponivelEm time.Time
}

func (e *ErrAindaNaoElegivel) Error() string {
	return fmt.Sprintf("resgate %q disponível somente a partir de %s",
		e.Tipo, e.DisponivelEm.Format("02/01/2006"))
}
