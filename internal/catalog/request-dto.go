package catalog

// payload for creating a resource unit
type CreateResourceRequest struct {
	Type         string `json:"type" binding:"required,oneof=AXE_BAY DUCKPIN_LANE PARTY_AREA"`
	Label        string `json:"label" binding:"required,min=1,max=100"`
	DisplayOrder int    `json:"display_order" binding:"omitempty,min=0"`
	Active       *bool  `json:"active"`
}

// payload for updating a resource unit
type UpdateResourceRequest struct {
	Label        *string `json:"label" binding:"omitempty,min=1,max=100"`
	Active       *bool   `json:"active"`
	DisplayOrder *int    `json:"display_order" binding:"omitempty,min=0"`
}
