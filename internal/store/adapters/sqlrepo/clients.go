package sqlrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dropDatabas3/gesclient/internal/domain/repository"
)

type clientRepo struct {
	db *gorm.DB
}

func (r *clientRepo) GetByNumero(ctx context.Context, numero string) (*repository.Client, error) {
	var m clientModel
	if err := r.db.WithContext(ctx).Where("numero = ?", numero).Take(&m).Error; err != nil {
		return nil, translate("get client", err)
	}
	c := m.toDomain()
	return &c, nil
}

func (r *clientRepo) List(ctx context.Context, filter repository.ClientFilter) ([]repository.Client, error) {
	q := r.db.WithContext(ctx).Model(&clientModel{})
	if filter.Statut != "" {
		q = q.Where("statut = ?", filter.Statut)
	}

	var models []clientModel
	if err := q.Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, translate("list clients", err)
	}

	out := make([]repository.Client, 0, len(models))
	for _, m := range models {
		out = append(out, m.toDomain())
	}
	return out, nil
}

// Create verifica el numero dentro de la transacción; el índice único cubre
// las carreras entre procesos.
func (r *clientRepo) Create(ctx context.Context, c repository.Client) (*repository.Client, error) {
	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now
	m := clientFromDomain(c)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&clientModel{}).Where("numero = ?", c.Numero).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return repository.ErrConflict
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		return nil, translate("create client", err)
	}

	out := m.toDomain()
	return &out, nil
}

func (r *clientRepo) Update(ctx context.Context, numero string, patch repository.ClientPatch) (*repository.Client, error) {
	var out repository.Client

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m clientModel
		if err := tx.Where("numero = ?", numero).Take(&m).Error; err != nil {
			return err
		}

		updates := map[string]any{"updated_at": time.Now().UTC()}
		if patch.Statut != nil {
			updates["statut"] = *patch.Statut
		}
		if patch.Nom != nil {
			updates["nom"] = *patch.Nom
		}
		if patch.Email != nil {
			updates["email"] = nullIfEmpty(*patch.Email)
		}
		if err := tx.Model(&clientModel{}).Where("id = ?", m.ID).Updates(updates).Error; err != nil {
			return err
		}

		out = m.toDomain()
		patch.Apply(&out)
		out.UpdatedAt = updates["updated_at"].(time.Time)
		return nil
	})
	if err != nil {
		return nil, translate("update client", err)
	}
	return &out, nil
}

func (r *clientRepo) Delete(ctx context.Context, numero string) (*repository.Client, error) {
	var m clientModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("numero = ?", numero).Take(&m).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", m.ID).Delete(&clientModel{}).Error
	})
	if err != nil {
		return nil, translate("delete client", err)
	}

	out := m.toDomain()
	return &out, nil
}

func (r *clientRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&clientModel{}).Count(&n).Error; err != nil {
		return 0, translate("count clients", err)
	}
	return n, nil
}

// translate mapea errores de gorm a los sentinels del dominio.
func translate(op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrConflict), errors.Is(err, gorm.ErrDuplicatedKey):
		return repository.ErrConflict
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repository.ErrNotFound
	default:
		return fmt.Errorf("sqlrepo: %s: %w", op, err)
	}
}
