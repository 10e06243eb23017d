// internal/investimento/repository.go
package investimento

import (
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Investimento.
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create insere uma nova aplicação.
func (r *Repository) Create(inv *Investimento) error {
	return r.DB.Create(inv).Error
}

// FindByID retorna uma aplicação pelo ID.
func (r *Repository) FindByID(id uint) (*Investimento, error) {
	var inv Investimento
	if err := r.DB.First(&inv, id).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

// ListByInvestidor retorna todas as aplicações de um investidor.
func (r *Repository) ListByInvestidor(investidorID uint) ([]Investimento, error) {
	var lista []Investimento
	err := r.DB.
		Where("investidor_id = ?", investidorID).
		Order("data_inicio DESC").
		Find(&lista).Error
	return lista, err
}

// ListByStatus retorna todas as aplicações com um determinado status.
func (r *Repository) ListByStatus(status string) ([]Investimento, error) {
	var lista []Investimento
	err := r.DB.Where("status = ?", status).Find(&lista).Error
	return lista, err
}

// UpdateStatus atualiza o status de uma aplicação. Se db == nil, usa o
// r.DB; permite usar dentro de transação.
func (r *Repository) UpdateStatus(db *gorm.DB, id uint, status string) error {
	if db == nil {
		db = r.DB
	}
	res := db.Model(&Investimento{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
