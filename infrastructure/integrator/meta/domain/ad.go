package metadomain

// Creative é o objeto aninhado retornado no campo creative de um anúncio.
type Creative struct {
	ID           *string `json:"id"`
	ThumbnailURL *string `json:"thumbnail_url"`
	ImageURL     *string `json:"image_url"`
	Body         *string `json:"body"`
	Title        *string `json:"title"`
}

// Ad é o formato bruto retornado por /act_{id}/ads.
type Ad struct {
	ID       string    `json:"id"`
	AdSetID  string    `json:"adset_id"`
	Name     string    `json:"name"`
	Status   string    `json:"status"`
	Creative *Creative `json:"creative"`
}
