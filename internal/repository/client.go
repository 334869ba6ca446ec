package repository

import (
	"context"

	constant "github.com/SeakMengs/MaintCert/internal/constant"
	"github.com/SeakMengs/MaintCert/internal/model"
	"gorm.io/gorm"
)

type ClientRepository struct {
	*baseRepository
}

func (cr ClientRepository) GetById(ctx context.Context, tx *gorm.DB, id uint) (*model.Client, error) {
	cr.logger.Debugf("Get client by id: %d", id)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var client model.Client
	if err := db.WithContext(ctx).Model(&model.Client{}).Where("id = ?", id).First(&client).Error; err != nil {
		return nil, classifyError(err)
	}

	return &client, nil
}

func (cr ClientRepository) Create(ctx context.Context, tx *gorm.DB, client *model.Client) (*model.Client, error) {
	cr.logger.Debugf("Create client: %s", client.Nombre)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Client{}).Create(client).Error; err != nil {
		return client, classifyError(err)
	}

	return client, nil
}
