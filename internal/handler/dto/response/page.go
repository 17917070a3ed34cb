package response

import (
	"time"

	"portfolio-api/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type PageResponse struct {
	Path       string    `json:"path"`
	IsEnabled  bool      `json:"is_enabled"`
	RedirectTo *string   `json:"redirect_to,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromPageView(v *queries.PageView) (*PageResponse, error) {
	var resp PageResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromPageList(views []*queries.PageView) ([]*PageResponse, error) {
	res := make([]*PageResponse, len(views))
	for i, v := range views {
		resp, err := FromPageView(v)
		if err != nil {
			return nil, err
		}
		res[i] = resp
	}
	return res, nil
}
