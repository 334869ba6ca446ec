package repository

import (
	"context"

	constant "github.com/SeakMengs/MaintCert/internal/constant"
	"github.com/SeakMengs/MaintCert/internal/model"
	"gorm.io/gorm"
)

type InstallationRepository struct {
	*baseRepository
}

func (ir InstallationRepository) GetById(ctx context.Context, tx *gorm.DB, id uint) (*model.Installation, error) {
	ir.logger.Debugf("Get installation by id: %d", id)

	db := ir.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var installation model.Installation
	if err := db.WithContext(ctx).Model(&model.Installation{}).Where("id = ?", id).First(&installation).Error; err != nil {
		return nil, classifyError(err)
	}

	return &installation, nil
}

func (ir InstallationRepository) Create(ctx context.Context, tx *gorm.DB, installation *model.Installation) (*model.Installation, error) {
	ir.logger.Debugf("Create installation: %s for client %d", installation.Nombre, installation.ClienteID)

	db := ir.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Installation{}).Omit("Cliente").Create(installation).Error; err != nil {
		return installation, classifyError(err)
	}

	return installation, nil
}
