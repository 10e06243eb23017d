// internal/resgate/repository.go
package resgate

import (
	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de Resgates.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// WithDB retorna uma cópia do repo usando um *gorm.DB específico (ex.: tx).
func (r *Repository) WithDB(db *gorm.DB) *Repository {
	if db == nil {
		db = r.DB
	}
	return &Repository{DB: db}
}

// Create insere um novo registro de resgate.
func (r *Repository) Create(res *Resgate) error {
	return r.DB.Create(res).Error
}

// FindByID busca um resgate pelo ID.
func (r *Repository) FindByID(id uint) (*Resgate, error) {
	var res Resgate
	if err := r.DB.First(&res, id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

// ListByInvestimento busca todos os resgates de um investimento,
// do mais antigo para o mais novo.
func (r *Repository) ListByInvestimento(investimentoID uint) ([]Resgate, error) {
	var lista []Resgate
	err := r.DB.
		Where("investimento_id = ?", investimentoID).
		Order("created_at ASC").
		Find(&lista).Error
	return lista, err
}

// ListByInvestidor busca os resgates de todas as aplicações de um investidor.
func (r *Repository) ListByInvestidor(investidorID uint) ([]Resgate, error) {
	var lista []Resgate
	err := r.DB.
		Table("resgates").
		Select("resgates.*").
		Joins("JOIN investimentos ON investimentos.id = resgates.investimento_id").
		Where("investimentos.investidor_id = ?", investidorID).
		Order("resgates.created_at DESC").
		Find(&lista).Error
	return lista, err
}

// UpdateStatus atualiza o status de um pedido de resgate.
func (r *Repository) UpdateStatus(id uint, status string) error {
	res := r.DB.Model(&Resgate{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
