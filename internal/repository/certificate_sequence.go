package repository

import (
	"context"
	"fmt"
	"time"

	constant "github.com/SeakMengs/MaintCert/internal/constant"
	"github.com/SeakMengs/MaintCert/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Certificate numbers restart at 1 for every type, month and year
type CertificateSequenceRepository struct {
	*baseRepository
}

// Next must run inside the creation transaction. The increment takes the row lock,
// so concurrent transactions for the same period queue behind each other until commit.
func (sr CertificateSequenceRepository) Next(ctx context.Context, tx *gorm.DB, tipo constant.CertificateType, at time.Time) (int, error) {
	sr.logger.Debugf("Next certificate sequence for %s %02d-%d", tipo, at.Month(), at.Year())

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	key := model.CertificateSequence{Tipo: tipo, Year: at.Year(), Month: int(at.Month())}

	if err := db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&key).Error; err != nil {
		return 0, err
	}

	where := db.WithContext(ctx).Model(&model.CertificateSequence{}).
		Where("tipo = ? AND year = ? AND month = ?", key.Tipo, key.Year, key.Month)

	if err := where.UpdateColumn("last_value", gorm.Expr("last_value + ?", 1)).Error; err != nil {
		return 0, err
	}

	var seq model.CertificateSequence
	if err := db.WithContext(ctx).Where("tipo = ? AND year = ? AND month = ?", key.Tipo, key.Year, key.Month).Take(&seq).Error; err != nil {
		return 0, err
	}

	return seq.LastValue, nil
}

// Example: CCTV-001-11-2025
func FormatCertificateNumber(tipo constant.CertificateType, seq int, at time.Time) string {
	return fmt.Sprintf("%s-%03d-%02d-%d", tipo.Prefix(), seq, int(at.Month()), at.Year())
}
