package activity

type ListFilter struct {
	Type  string `form:"type"`
	Limit int    `form:"limit"`
}

type RecordRequest struct {
	Title       string
	Description string
	Type        string
	CreatedBy   string
	SourceKey   string
}

type ActivityResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	CreatedBy   *string `json:"created_by,omitempty"`
	Timestamp   string  `json:"timestamp"`
}
