package pagination

// Metadata is the "pagination" object of a listing response.
type Metadata struct {
	Total      int64 `json:"total" example:"15"`
	Page       int   `json:"page" example:"1"`
	Limit      int   `json:"limit" example:"10"`
	TotalPages int   `json:"totalPages" example:"2"`
	HasNext    bool  `json:"hasNext" example:"true"`
	HasPrev    bool  `json:"hasPrev" example:"false"`
}

// NewMetadata derives the pager state for a listing of total rows.
func NewMetadata(params Params, total int64) Metadata {
	pages := CalculateTotalPages(total, params.Limit)
	return Metadata{
		Total:      total,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: pages,
		HasNext:    params.Page < pages,
		HasPrev:    params.Page > 1,
	}
}
