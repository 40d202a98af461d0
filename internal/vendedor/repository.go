package vendedor

import "gorm.io/gorm"

type Repository interface {
	BuscarPorCodigoAcesso(db *gorm.DB, codigo string) (*Vendedor, error)
	BuscarPorID(db *gorm.DB, id uint) (*Vendedor, error)
	Salvar(db *gorm.DB, v *Vendedor) error
	Atualizar(db *gorm.DB, id uint, novosDados *Vendedor) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// Só vendedores ativos autenticam.
func (r *repositoryImpl) BuscarPorCodigoAcesso(db *gorm.DB, codigo string) (*Vendedor, error) {
	var v Vendedor
	err := db.Where("codigo_acesso = ? AND ativo = true", codigo).First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Vendedor, error) {
	var v Vendedor
	err := db.First(&v, id).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *repositoryImpl) Salvar(db *gorm.DB, v *Vendedor) error {
	return db.Save(v).Error
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Vendedor) error {
	var existente Vendedor
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Nome = novosDados.Nome
	existente.Sobrenome = novosDados.Sobrenome
	existente.Telefone = novosDados.Telefone
	existente.Foto = novosDados.Foto

	return db.Save(&existente).Error
}
