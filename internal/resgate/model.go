// internal/resgate/model.go
package resgate

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/AureaInvest/api-investidor/internal/carencia"
)

// Status possíveis de um pedido de resgate.
const (
	StatusPendente = "Pendente"
	StatusPago     = "Pago"
	StatusNegado   = "Negado"
)

// Resgate registra um pedido de resgate aprovado sobre um investimento.
// O registro é imutável depois de criado: os valores calculados na
// aprovação valem para sempre, mesmo que a tabela de taxas mude.
type Resgate struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	InvestimentoID uint            `gorm:"not null;index" json:"investimentoId"`
	Protocolo      string          `gorm:"size:36;uniqueIndex;not null" json:"protocolo"`
	Tipo           string          `gorm:"size:30;not null" json:"tipo"`
	ValorBruto     decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"valorBruto"`
	Penalidade     decimal.Decimal `gorm:"type:decimal(20,8);not null;default:0" json:"penalidade"`
	ValorLiquido   decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"valorLiquido"`
	Status         string          `gorm:"size:20;not null;default:'Pendente';index" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Resgate{})
}

// Anterior converte o registro no resumo usado pelos cálculos puros.
func (r *Resgate) Anterior() carencia.ResgateAnterior {
	return carencia.ResgateAnterior{
		Tipo:       carencia.TipoResgate(r.Tipo),
		ValorBruto: r.ValorBruto,
	}
}

// Anteriores converte uma lista de registros em resumos para o motor.
func Anteriores(registros []Resgate) []carencia.ResgateAnterior {
	out := make([]carencia.ResgateAnterior, 0, len(registros))
	for i := range registros {
		out = append(out, registros[i].Anterior())
	}
	return out
}
