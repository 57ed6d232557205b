// Package sqlrepo implementa los repositorios de clients y logs sobre gorm.
// Lo comparten los adapters postgres y sqlite; solo cambia el dialector.
package sqlrepo

import (
	"time"

	"github.com/dropDatabas3/gesclient/internal/domain/repository"
)

type clientModel struct {
	ID        string  `gorm:"primaryKey;size:36"`
	Numero    string  `gorm:"size:64;not null;uniqueIndex:idx_clients_numero"`
	Statut    string  `gorm:"size:16;not null;index:idx_clients_statut"`
	Nom       string  `gorm:"size:255;not null"`
	Email     *string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (clientModel) TableName() string { return "clients" }

func (m clientModel) toDomain() repository.Client {
	c := repository.Client{
		ID:        m.ID,
		Numero:    m.Numero,
		Statut:    m.Statut,
		Nom:       m.Nom,
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
	if m.Email != nil {
		c.Email = *m.Email
	}
	return c
}

func clientFromDomain(c repository.Client) clientModel {
	return clientModel{
		ID:        c.ID,
		Numero:    c.Numero,
		Statut:    c.Statut,
		Nom:       c.Nom,
		Email:     nullIfEmpty(c.Email),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type logModel struct {
	ID      string    `gorm:"primaryKey;size:36"`
	Numero  string    `gorm:"size:64;not null;index:idx_logs_numero"`
	Statut  string    `gorm:"size:16;not null"`
	Message string    `gorm:"type:text;not null"`
	Date    time.Time `gorm:"not null;index:idx_logs_date"`
}

func (logModel) TableName() string { return "logs" }

func (m logModel) toDomain() repository.Log {
	return repository.Log{
		ID:      m.ID,
		Numero:  m.Numero,
		Statut:  m.Statut,
		Message: m.Message,
		Date:    m.Date.UTC(),
	}
}

// nullIfEmpty retorna nil si s está vacío; los emails opcionales se guardan como NULL.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
