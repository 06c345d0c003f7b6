package dto

// Activity es un registro de actividad retornado por la búsqueda.
type Activity struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Kind        string `json:"kind"`
}

// ActivitySearchResponse es el resultado de GET /v1/activity/search.
type ActivitySearchResponse struct {
	Activities []Activity `json:"activities"`
}
