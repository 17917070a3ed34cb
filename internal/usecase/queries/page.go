package queries

import "context"

type PageReadStore interface {
	List(ctx context.Context) ([]*PageView, error)
	FindByPath(ctx context.Context, path string) (*PageView, error)
}

type PageQueries interface {
	List(ctx context.Context) ([]*PageView, error)
}

type pageQueriesImpl struct {
	store PageReadStore
}

func NewPageQueries(store PageReadStore) PageQueries {
	return &pageQueriesImpl{store: store}
}

func (q *pageQueriesImpl) List(ctx context.Context) ([]*PageView, error) {
	return q.store.List(ctx)
}
