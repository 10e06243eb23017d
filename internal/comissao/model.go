// internal/comissao/model.go
package comissao

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CalculoComissao registra a alocação gerada para um pagamento captado.
// O cronograma persistido é um retrato do cálculo na data de geração.
type CalculoComissao struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	InvestidorID  *uint           `gorm:"index" json:"investidorId"`
	EscritorioID  *uint           `gorm:"index" json:"escritorioId"`
	AssessorID    *uint           `gorm:"index" json:"assessorId"`
	Valor         decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"valor"`
	DataPagamento time.Time       `gorm:"not null" json:"dataPagamento"`
	PrazoMeses    int             `gorm:"not null" json:"prazoMeses"`
	Ciclo         string          `gorm:"size:20" json:"cicloLiquidez"`
	TotalReceber  decimal.Decimal `gorm:"type:decimal(20,8);not null;default:0" json:"totalReceber"`

	// Associação com as parcelas geradas
	Parcelas []ParcelaComissao `gorm:"foreignKey:CalculoComissaoID;constraint:OnDelete:CASCADE" json:"parcelas"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// ParcelaComissao é a linha mensal persistida do cronograma.
type ParcelaComissao struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	CalculoComissaoID uint            `gorm:"not null;index" json:"calculoComissaoId"`
	PeriodoAno        int             `gorm:"not null" json:"periodoAno"`
	PeriodoMes        int             `gorm:"not null" json:"periodoMes"`
	CotaInvestidor    decimal.Decimal `gorm:"type:decimal(20,8);not null;default:0" json:"cotaInvestidor"`
	CotaEscritorio    decimal.Decimal `gorm:"type:decimal(20,8);not null;default:0" json:"cotaEscritorio"`
	CotaAssessor      decimal.Decimal `gorm:"type:decimal(20,8);not null;default:0" json:"cotaAssessor"`
	Status            string          `gorm:"size:50;not null;default:'Pendente';index" json:"status"`
	DataPagamento     *time.Time      `json:"dataPagamento"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria as tabelas no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&CalculoComissao{}, &ParcelaComissao{})
}
