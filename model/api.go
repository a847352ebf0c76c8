package model

// ListMeta carries pagination details alongside list responses
type ListMeta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	TotalCount  int64 `json:"total_count"`
	TotalPages  int   `json:"total_pages"`
	CacheUsed   bool  `json:"cache_used"`
}

// DetailMeta carries cache details alongside single-item responses
type DetailMeta struct {
	CacheUsed bool `json:"cache_used"`
}
