package investidor

import "github.com/shopspring/decimal"

type ResumoInvestidorDTO struct {
	ID                  uint            `json:"id"`
	Nome                string          `json:"nome"`
	Sobrenome           string          `json:"sobrenome"`
	Email               string          `json:"email"`
	CPF                 string          `json:"cpf"`
	Telefone            string          `json:"telefone"`
	Foto                string          `json:"foto"`
	InvestimentosAtivos int             `json:"investimentosAtivos"`
	TotalInvestido      decimal.Decimal `json:"totalInvestido"`
	TotalResgatado      decimal.Decimal `json:"totalResgatado"`
	RetornoMensal       decimal.Decimal `json:"retornoMensal"`
	ComissaoAReceber    decimal.Decimal `json:"comissaoAReceber"`
}
