package budget

import (
	"time"

	"fintrack/internal/domain/entity"
)

type ItemDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	AmountCents int64  `json:"amount_cents"`
}

type DTO struct {
	ID        int64     `json:"id"`
	Year      int       `json:"year"`
	Month     int       `json:"month"`
	Items     []ItemDTO `json:"items"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toDTO(b *entity.ManualBudget) DTO {
	items := make([]ItemDTO, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, ItemDTO{ID: it.ID, Name: it.Name, AmountCents: it.AmountCents})
	}
	return DTO{
		ID:        b.ID,
		Year:      b.Year,
		Month:     b.Month,
		Items:     items,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
