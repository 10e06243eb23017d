// internal/comissao/repository.go
package comissao

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para CalculoComissao e parcelas.
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create insere um novo cálculo de comissão.
func (r *Repository) Create(db *gorm.DB, calc *CalculoComissao) error {
	if db == nil {
		db = r.DB
	}
	return db.Create(calc).Error
}

// CreateParcelasInBatch cria múltiplas parcelas de uma vez (ignora se vazio).
func (r *Repository) CreateParcelasInBatch(db *gorm.DB, parcelas []*ParcelaComissao) error {
	if db == nil {
		db = r.DB
	}
	if len(parcelas) == 0 {
		return nil
	}
	return db.Create(parcelas).Error
}

// FindByID retorna um cálculo pelo ID com as parcelas pré-carregadas.
func (r *Repository) FindByID(id uint) (*CalculoComissao, error) {
	var calc CalculoComissao
	if err := r.DB.Preload("Parcelas").First(&calc, id).Error; err != nil {
		return nil, err
	}
	return &calc, nil
}

// ListByInvestidor retorna todos os cálculos ligados a um investidor.
func (r *Repository) ListByInvestidor(investidorID uint) ([]CalculoComissao, error) {
	var lista []CalculoComissao
	err := r.DB.
		Preload("Parcelas").
		Where("investidor_id = ?", investidorID).
		Find(&lista).Error
	return lista, err
}

// SumCotasByCalculoID soma as três cotas das parcelas de um cálculo.
// Se db == nil, usa o r.DB. Permite usar dentro de transação.
func (r *Repository) SumCotasByCalculoID(db *gorm.DB, calculoID uint) (decimal.Decimal, error) {
	if db == nil {
		db = r.DB
	}
	var total decimal.Decimal
	err := db.Model(&ParcelaComissao{}).
		Where("calculo_comissao_id = ?", calculoID).
		Select("COALESCE(SUM(cota_investidor + cota_escritorio + cota_assessor), 0)").
		Scan(&total).Error
	return total, err
}

// RecalcTotalForCalculo soma as parcelas e grava em total_receber.
func (r *Repository) RecalcTotalForCalculo(db *gorm.DB, calculoID uint) error {
	if db == nil {
		db = r.DB
	}
	total, err := r.SumCotasByCalculoID(db, calculoID)
	if err != nil {
		return err
	}
	return db.Model(&CalculoComissao{}).
		Where("id = ?", calculoID).
		Update("total_receber", total).Error
}

// VolumeCaptado soma o valor de todos os pagamentos em que o beneficiário
// aparece, em qualquer papel. É a base das faixas de bônus de performance.
func (r *Repository) VolumeCaptado(beneficiarioID uint) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.DB.Model(&CalculoComissao{}).
		Where("investidor_id = ? OR escritorio_id = ? OR assessor_id = ?",
			beneficiarioID, beneficiarioID, beneficiarioID).
		Select("COALESCE(SUM(valor), 0)").
		Scan(&total).Error
	return total, err
}

// Delete remove um cálculo (soft delete; as parcelas caem em cascata).
func (r *Repository) Delete(calc *CalculoComissao) error {
	return r.DB.Delete(calc).Error
}
