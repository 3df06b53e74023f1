package domain

type Quote struct {
	ID      string   `json:"_id,omitempty"`
	Content string   `json:"content"`
	Author  string   `json:"author"`
	Tags    []string `json:"tags,omitempty"`
}
