package expense

import (
	"time"

	"fintrack/internal/domain/entity"
)

type DTO struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	AmountCents int64     `json:"amount_cents"`
	Year        int       `json:"year"`
	Month       int       `json:"month"`
	CreatedAt   time.Time `json:"created_at"`
}

func toDTO(e *entity.Expense) DTO {
	return DTO{
		ID:          e.ID,
		Description: e.Description,
		Category:    e.Category,
		AmountCents: e.AmountCents,
		Year:        e.Year,
		Month:       e.Month,
		CreatedAt:   e.CreatedAt,
	}
}
