package store

import (
	"context"
	"fmt"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"

	"financehub/internal/ports"
)

// Supabase implements ports.Store over the hosted PostgREST API. Every agent
// holds its own handle; no state is shared between requests.
type Supabase struct {
	client *supabase.Client
}

var _ ports.Store = (*Supabase)(nil)

// New connects to the hosted store with the given API key. Agents pass the
// service-role key; presentation reads pass the anonymous key.
func New(url, apiKey string) (*Supabase, error) {
	client, err := supabase.NewClient(url, apiKey, nil)
	if err != nil {
		return nil, fmt.Errorf("create store client: %w", err)
	}
	return &Supabase{client: client}, nil
}

// Insert appends a record, echoing the stored row into dest when requested.
func (s *Supabase) Insert(ctx context.Context, table string, record any, dest any) error {
	fb := s.client.From(table).Insert(record, false, "", returning(dest), "")
	return s.run(fb, table, "insert", dest)
}

// Select reads rows matching q into dest.
func (s *Supabase) Select(ctx context.Context, table string, q ports.Query, dest any) error {
	fb := applyQuery(s.client.From(table).Select("*", "", false), q)
	return s.run(fb, table, "select", dest)
}

// Update patches rows matching q.
func (s *Supabase) Update(ctx context.Context, table string, q ports.Query, patch any, dest any) error {
	fb := applyQuery(s.client.From(table).Update(patch, returning(dest), ""), q)
	return s.run(fb, table, "update", dest)
}

// Upsert inserts or replaces a record keyed by onConflict.
func (s *Supabase) Upsert(ctx context.Context, table string, record any, onConflict string, dest any) error {
	fb := s.client.From(table).Upsert(record, onConflict, returning(dest), "")
	return s.run(fb, table, "upsert", dest)
}

func applyQuery(fb *postgrest.FilterBuilder, q ports.Query) *postgrest.FilterBuilder {
	for col, v := range q.Eq {
		fb = fb.Eq(col, v)
	}
	for col, v := range q.Is {
		fb = fb.Is(col, v)
	}
	for col, v := range q.Gte {
		fb = fb.Gte(col, v)
	}
	for col, v := range q.Lt {
		fb = fb.Lt(col, v)
	}
	if q.Order != "" {
		fb = fb.Order(q.Order, &postgrest.OrderOpts{Ascending: !q.Descending})
	}
	if q.Limit > 0 {
		fb = fb.Limit(q.Limit, "")
	}
	return fb
}

// run executes the built request. The PostgREST client carries no context
// plumbing, so a hung store call is bounded only by the platform's own
// request timeout.
func (s *Supabase) run(fb *postgrest.FilterBuilder, table, op string, dest any) error {
	var err error
	if dest != nil {
		_, err = fb.ExecuteTo(dest)
	} else {
		_, _, err = fb.Execute()
	}
	if err != nil {
		return &ports.StoreError{Table: table, Op: op, Err: err}
	}
	return nil
}

func returning(dest any) string {
	if dest == nil {
		return "minimal"
	}
	return "representation"
}
