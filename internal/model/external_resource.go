package model

// ExternalResource 站外补充资源描述
// swagger:model ExternalResource
type ExternalResource struct {
	ID       string   `json:"id,omitempty"`
	Title    string   `json:"title,omitempty"`
	URL      string   `json:"url,omitempty"`
	Provider string   `json:"provider,omitempty"`
	Skills   []string `json:"skills,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}
