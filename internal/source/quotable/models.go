package quotable

// APIResponse represents the Quotable /quotes response structure.
type APIResponse struct {
	Count      int     `json:"count"`
	TotalCount int     `json:"totalCount"`
	Page       int     `json:"page"`
	TotalPages int     `json:"totalPages"`
	Results    []Quote `json:"results"`
}

type Quote struct {
	ID      string   `json:"_id"`
	Content string   `json:"content"`
	Author  string   `json:"author"`
	Tags    []string `json:"tags"`
	Length  int      `json:"length"`
}
