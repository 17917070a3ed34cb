package queries

import "context"

type TemplateReadStore interface {
	// List returns all templates ordered by day_of_week, then start_time.
	List(ctx context.Context) ([]*TemplateView, error)
}

type TemplateQueries interface {
	List(ctx context.Context) ([]*TemplateView, error)
}

type templateQueriesImpl struct {
	store TemplateReadStore
}

func NewTemplateQueries(store TemplateReadStore) TemplateQueries {
	return &templateQueriesImpl{store: store}
}

func (q *templateQueriesImpl) List(ctx context.Context) ([]*TemplateView, error) {
	return q.store.List(ctx)
}
