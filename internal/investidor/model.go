package investidor

import (
	"gorm.io/gorm"

	"github.com/AureaInvest/api-investidor/internal/investimento"
)

type Investidor struct {
	gorm.Model
	Nome                  string `json:"nome"`
	Sobrenome             string `json:"sobrenome"`
	CPF                   string `json:"cpf" gorm:"unique"`
	Email                 string `json:"email" gorm:"unique"`
	Telefone              string `json:"telefone"`
	Foto                  string `json:"foto"`
	Senha                 string `json:"-"`
	PrecisaRedefinirSenha bool   `json:"-"`
	IsAdmin               bool   `json:"isAdmin"`

	// Hierarquia de captação: quem trouxe o investidor. Usada pelo
	// alocador de comissões; ambos opcionais.
	EscritorioID *uint `json:"escritorioId"`
	AssessorID   *uint `json:"assessorId"`

	Investimentos []investimento.Investimento `gorm:"foreignKey:InvestidorID" json:"investimentos,omitempty"`
}
