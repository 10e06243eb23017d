package investidor

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/AureaInvest/api-investidor/internal/carencia"
	"github.com/AureaInvest/api-investidor/internal/comissao"
	"github.com/AureaInvest/api-investidor/internal/investimento"
	"github.com/AureaInvest/api-investidor/internal/resgate"
)

type Repository interface {
	BuscarPorEmailOuCPF(db *gorm.DB, valor string) (*Investidor, error)
	Salvar(db *gorm.DB, i *Investidor) error
	BuscarPorID(db *gorm.DB, id uint) (*Investidor, error)
	ListarTodos(db *gorm.DB) ([]Investidor, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Investidor) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// Busca primeiro por e-mail, depois por CPF, para evitar ambiguidade
func (r *repositoryImpl) BuscarPorEmailOuCPF(db *gorm.DB, valor string) (*Investidor, error) {
	var i Investidor

	if err := db.Where("email = ?", valor).First(&i).Error; err == nil {
		return &i, nil
	}
	if err := db.Where("cpf = ?", valor).First(&i).Error; err == nil {
		return &i, nil
	}

	return nil, gorm.ErrRecordNotFound
}

func (r *repositoryImpl) Salvar(db *gorm.DB, i *Investidor) error {
	return db.Save(i).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Investidor, error) {
	var inv Investidor
	err := db.Preload("Investimentos").First(&inv, id).Error
	return &inv, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Investidor, error) {
	var investidores []Investidor
	err := db.Preload("Investimentos").Find(&investidores).Error
	return investidores, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Investidor) error {
	var existente Investidor
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Nome = novosDados.Nome
	existente.Sobrenome = novosDados.Sobrenome
	existente.CPF = novosDados.CPF
	existente.Email = novosDados.Email
	existente.Telefone = novosDados.Telefone
	existente.Foto = novosDados.Foto
	existente.EscritorioID = novosDados.EscritorioID
	existente.AssessorID = novosDados.AssessorID

	return db.Save(&existente).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Investidor{}, id).Error
}

// MontarResumoInvestidorDTO agrega as métricas exibidas no painel.
// Os totais saem dos registros já gravados; o retorno mensal corrente sai
// do motor de cálculo sobre o principal ainda disponível.
func MontarResumoInvestidorDTO(
	inv Investidor,
	aplicacoes []investimento.Investimento,
	resgates []resgate.Resgate,
	calculos []comissao.CalculoComissao,
) ResumoInvestidorDTO {
	ativos := 0
	totalInvestido := decimal.Zero
	retornoMensal := decimal.Zero

	porAplicacao := make(map[uint][]carencia.ResgateAnterior)
	for _, r := range resgates {
		porAplicacao[r.InvestimentoID] = append(porAplicacao[r.InvestimentoID], r.Anterior())
	}

	for i := range aplicacoes {
		a := &aplicacoes[i]
		if a.Status != investimento.StatusAtivo {
			continue
		}
		ativos++
		totalInvestido = totalInvestido.Add(a.Principal)

		disponivel := carencia.PrincipalDisponivel(a.Principal, porAplicacao[a.ID])
		retornoMensal = retornoMensal.Add(disponivel.Mul(a.TaxaMensal))
	}

	totalResgatado := decimal.Zero
	for _, r := range resgates {
		if r.Status == resgate.StatusPago {
			totalResgatado = totalResgatado.Add(r.ValorLiquido)
		}
	}

	comissaoAReceber := decimal.Zero
	for _, c := range calculos {
		comissaoAReceber = comissaoAReceber.Add(c.TotalReceber)
	}

	return ResumoInvestidorDTO{
		ID:                  inv.ID,
		Nome:                inv.Nome,
		Sobrenome:           inv.Sobrenome,
		Email:               inv.Email,
		CPF:                 inv.CPF,
		Telefone:            inv.Telefone,
		Foto:                inv.Foto,
		InvestimentosAtivos: ativos,
		TotalInvestido:      totalInvestido,
		TotalResgatado:      totalResgatado,
		RetornoMensal:       retornoMensal,
		ComissaoAReceber:    comissaoAReceber,
	}
}
