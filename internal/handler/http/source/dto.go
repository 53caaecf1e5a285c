package source

import (
	"time"

	"fintrack/internal/domain/entity"
)

type DTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Year        int       `json:"year"`
	Month       int       `json:"month"`
	AmountCents int64     `json:"amount_cents"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toDTO(e *entity.Source) DTO {
	return DTO{
		ID:          e.ID,
		Name:        e.Name,
		Year:        e.Year,
		Month:       e.Month,
		AmountCents: e.AmountCents,
		Status:      e.Status,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
