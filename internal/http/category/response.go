package category

import (
	"time"

	"github.com/google/uuid"

	"github.com/jorge-ld8/budget-tracking-sub001/internal/category"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/pagination"
)

type categoryResponse struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Type      category.Type `json:"type"`
	Icon      string        `json:"icon,omitempty"`
	Color     string        `json:"color,omitempty"`
	UserID    uuid.UUID     `json:"userId"`
	IsDeleted bool          `json:"isDeleted"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt *time.Time    `json:"updatedAt,omitempty"`
}

type singleResponse struct {
	Category categoryResponse `json:"category"`
	Message  string           `json:"message,omitempty"`
}

type listResponse struct {
	Categories []categoryResponse `json:"categories"`
	pagination.Meta
}

func toResponse(c *category.Category) categoryResponse {
	return categoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Type:      c.Type,
		Icon:      c.Icon,
		Color:     c.Color,
		UserID:    c.UserID,
		IsDeleted: c.Deleted(),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toListResponse(categories []*category.Category, meta pagination.Meta) listResponse {
	resp := listResponse{
		Categories: make([]categoryResponse, len(categories)),
		Meta:       meta,
	}
	for i, c := range categories {
		resp.Categories[i] = toResponse(c)
	}

	return resp
}
