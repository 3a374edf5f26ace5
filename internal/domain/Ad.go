package domain

import "time"

// Ad representa um anúncio sincronizado na tabela ads.
// Os atributos do criativo são achatados a partir do objeto aninhado da API.
type Ad struct {
	ID            string    `json:"ad_id"`
	AdSetID       string    `json:"adset_id"`
	Name          string    `json:"name"`
	Status        string    `json:"status"`
	CreativeID    *string   `json:"creative_id,omitempty"`
	ThumbnailURL  *string   `json:"thumbnail_url,omitempty"`
	ImageURL      *string   `json:"image_url,omitempty"`
	CreativeBody  *string   `json:"creative_body,omitempty"`
	CreativeTitle *string   `json:"creative_title,omitempty"`
	UpdatedAt     time.Time `json:"updated_at,omitempty"`
}
