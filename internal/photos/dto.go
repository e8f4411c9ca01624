package photos

import (
	"time"

	"github.com/google/uuid"

	"github.com/lokoloapp/lokolo-backend/pkg/db/models"
)

// PhotoDTO is the wire shape for a listing photo.
type PhotoDTO struct {
	ID         uuid.UUID `json:"id"`
	BusinessID uuid.UUID `json:"business_id"`
	PhotoURL   string    `json:"photo_url"`
	IsPrimary  bool      `json:"is_primary"`
	CreatedAt  time.Time `json:"created_at"`
}

// UploadInput carries one multipart upload after the controller has read the
// file part into memory.
type UploadInput struct {
	BusinessID  uuid.UUID
	FileName    string
	ContentType string
	Data        []byte
	IsPrimary   bool
}

func FromModel(p *models.BusinessPhoto) *PhotoDTO {
	if p == nil {
		return nil
	}
	return &PhotoDTO{
		ID:         p.ID,
		BusinessID: p.BusinessID,
		PhotoURL:   p.PhotoURL,
		IsPrimary:  p.IsPrimary,
		CreatedAt:  p.CreatedAt,
	}
}

func FromModels(rows []models.BusinessPhoto) []PhotoDTO {
	out := make([]PhotoDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}
