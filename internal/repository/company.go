package repository

import (
	"context"
	"errors"

	constant "github.com/SeakMengs/MaintCert/internal/constant"
	"github.com/SeakMengs/MaintCert/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CompanyRepository struct {
	*baseRepository
}

// Get returns the single company record. A missing record yields an empty company, like a left join would
func (cr CompanyRepository) Get(ctx context.Context, tx *gorm.DB) (*model.Company, error) {
	cr.logger.Debug("Get company")

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var company model.Company
	if err := db.WithContext(ctx).Model(&model.Company{}).Where("id = ?", constant.COMPANY_ID).First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.Company{}, nil
		}
		return nil, classifyError(err)
	}

	return &company, nil
}

func (cr CompanyRepository) Upsert(ctx context.Context, tx *gorm.DB, company model.Company) (*model.Company, error) {
	cr.logger.Debugf("Upsert company: %s", company.Nombre)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	company.ID = constant.COMPANY_ID
	if err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"nombre", "rut", "direccion", "telefono", "email", "updated_at"}),
	}).Create(&company).Error; err != nil {
		return nil, classifyError(err)
	}

	return &company, nil
}
