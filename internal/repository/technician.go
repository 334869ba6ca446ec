package repository

import (
	"context"

	constant "github.com/SeakMengs/MaintCert/internal/constant"
	"github.com/SeakMengs/MaintCert/internal/model"
	"gorm.io/gorm"
)

type TechnicianRepository struct {
	*baseRepository
}

func (tr TechnicianRepository) GetById(ctx context.Context, tx *gorm.DB, id uint) (*model.Technician, error) {
	tr.logger.Debugf("Get technician by id: %d", id)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var technician model.Technician
	if err := db.WithContext(ctx).Model(&model.Technician{}).Where("id = ?", id).First(&technician).Error; err != nil {
		return nil, classifyError(err)
	}

	return &technician, nil
}

func (tr TechnicianRepository) Create(ctx context.Context, tx *gorm.DB, technician *model.Technician) (*model.Technician, error) {
	tr.logger.Debugf("Create technician: %s", technician.Nombre)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Technician{}).Create(technician).Error; err != nil {
		return technician, classifyError(err)
	}

	return technician, nil
}
