// internal/investimento/model.go
package investimento

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/AureaInvest/api-investidor/internal/carencia"
	"github.com/AureaInvest/api-investidor/internal/tabelataxas"
)

// Status do ciclo de vida de uma aplicação.
const (
	StatusPendente  = "Pendente"
	StatusAtivo     = "Ativo"
	StatusEncerrado = "Encerrado"
)

// Investimento registra uma aplicação de um investidor.
//
// TaxaMensal é resolvida uma única vez na criação, a partir da tabela de
// taxas, e gravada aqui: mudanças posteriores na tabela não alteram
// aplicações já contratadas.
type Investimento struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	InvestidorID uint            `gorm:"not null;index" json:"investidorId"`
	Principal    decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"principal"`
	PrazoMeses   int             `gorm:"not null" json:"prazoMeses"`
	Ciclo        string          `gorm:"size:20;not null" json:"cicloLiquidez"`
	TaxaMensal   decimal.Decimal `gorm:"type:decimal(12,8);not null" json:"taxaMensal"`
	DataInicio   time.Time       `gorm:"not null" json:"dataInicio"`
	Status       string          `gorm:"size:20;not null;default:'Pendente';index" json:"status"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Investimento{})
}

// Snapshot converte o registro no retrato imutável consumido pelo motor
// de cálculo.
func (i *Investimento) Snapshot() carencia.Investimento {
	return carencia.Investimento{
		Principal:  i.Principal,
		TaxaMensal: i.TaxaMensal,
		PrazoMeses: i.PrazoMeses,
		Ciclo:      tabelataxas.CicloLiquidez(i.Ciclo),
		DataInicio: i.DataInicio,
	}
}

// Vencimento é a data de fim do prazo de carência.
func (i *Investimento) Vencimento() time.Time {
	return i.DataInicio.AddDate(0, i.PrazoMeses, 0)
}
