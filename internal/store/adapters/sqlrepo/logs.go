package sqlrepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dropDatabas3/gesclient/internal/domain/repository"
)

type logRepo struct {
	db *gorm.DB
}

func (r *logRepo) Append(ctx context.Context, l repository.Log) (*repository.Log, error) {
	if l.Date.IsZero() {
		l.Date = time.Now()
	}
	m := logModel{
		ID:      uuid.NewString(),
		Numero:  l.Numero,
		Statut:  l.Statut,
		Message: l.Message,
		Date:    l.Date.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, translate("append log", err)
	}
	out := m.toDomain()
	return &out, nil
}

func (r *logRepo) List(ctx context.Context) ([]repository.Log, error) {
	var models []logModel
	if err := r.db.WithContext(ctx).Order("date DESC").Find(&models).Error; err != nil {
		return nil, translate("list logs", err)
	}
	out := make([]repository.Log, 0, len(models))
	for _, m := range models {
		out = append(out, m.toDomain())
	}
	return out, nil
}
