package request

type SetPageRequest struct {
	Path       string  `json:"path" binding:"required"`
	IsEnabled  *bool   `json:"is_enabled" binding:"required"`
	RedirectTo *string `json:"redirect_to,omitempty"`
}
