package viral

import (
	"context"
	"testing"
	"time"

	"financehub/internal/domain"
	"financehub/internal/ports"
)

type fakeStore struct {
	inserted map[string][]any
	upserted map[string][]any
}

func newFakeStore() *fakeStore {
	return &fakeStore{inserted: map[string][]any{}, upserted: map[string][]any{}}
}

func (f *fakeStore) Insert(_ context.Context, table string, record any, _ any) error {
	f.inserted[table] = append(f.inserted[table], record)
	return nil
}

func (f *fakeStore) Select(context.Context, string, ports.Query, any) error { return nil }

func (f *fakeStore) Update(context.Context, string, ports.Query, any, any) error { return nil }

func (f *fakeStore) Upsert(_ context.Context, table string, record any, _ string, _ any) error {
	f.upserted[table] = append(f.upserted[table], record)
	return nil
}

type fixedRand struct {
	n int
	f float64
}

func (r fixedRand) Intn(n int) int {
	if r.n >= n {
		return n - 1
	}
	return r.n
}

func (r fixedRand) Float64() float64 { return r.f }

func TestCalculateViralPotential(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		trend domain.TrendingTopic
		want  float64
	}{
		{
			name:  "low volume neutral",
			trend: domain.TrendingTopic{Keyword: "poupança", Volume: 5000, Sentiment: domain.SentimentNeutral},
			want:  0.5,
		},
		{
			name: "mid volume positive with terms",
			trend: domain.TrendingTopic{
				Keyword:      "cartão sem anuidade",
				Volume:       60000,
				Sentiment:    domain.SentimentPositive,
				RelatedTerms: []string{"cartão gratuito", "sem taxa"},
			},
			want: 1.0,
		},
		{
			name: "negative adds less than positive",
			trend: domain.TrendingTopic{
				Keyword:   "inflação 2025",
				Volume:    90000,
				Sentiment: domain.SentimentNegative,
			},
			want: 0.8,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := CalculateViralPotential(tc.trend)
			if diff := got - tc.want; diff > 1e-9 || diff < -1e-9 {
				t.Fatalf("potential = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCalculateViralPotentialCapped(t *testing.T) {
	t.Parallel()

	trend := domain.TrendingTopic{
		Keyword:      "bitcoin alta",
		Volume:       500000,
		Sentiment:    domain.SentimentPositive,
		RelatedTerms: []string{"a", "b", "c", "d", "e", "f"},
	}
	if got := CalculateViralPotential(trend); got != 1.0 {
		t.Fatalf("potential = %v, want capped at 1.0", got)
	}
}

func TestIdentifyFinancialTrends(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	creator := NewCreator(store, fixedRand{}, nil)

	trends, err := creator.IdentifyFinancialTrends(context.Background())
	if err != nil {
		t.Fatalf("IdentifyFinancialTrends: %v", err)
	}
	if len(trends) != 4 {
		t.Fatalf("got %d trends, want 4", len(trends))
	}
	if got := len(store.upserted["trending_topics"]); got != 4 {
		t.Fatalf("got %d trending_topics upserts, want 4", got)
	}
}

func TestCreateFinancialMemes(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	creator := NewCreator(store, fixedRand{n: 1}, nil)

	memes, err := creator.CreateFinancialMemes(context.Background())
	if err != nil {
		t.Fatalf("CreateFinancialMemes: %v", err)
	}
	if len(memes) != 3 {
		t.Fatalf("got %d memes, want 3 (top trends only)", len(memes))
	}
	for _, meme := range memes {
		if meme.Type != domain.ContentMeme {
			t.Fatalf("type = %s, want meme", meme.Type)
		}
		if len(meme.Hashtags) < 3 {
			t.Fatalf("meme %q has %d hashtags, want at least the base set", meme.Title, len(meme.Hashtags))
		}
	}
}

func TestScheduleViralContent(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	creator := NewCreator(store, fixedRand{}, nil)
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	scheduled, err := creator.ScheduleViralContent(context.Background(), now)
	if err != nil {
		t.Fatalf("ScheduleViralContent: %v", err)
	}

	if len(scheduled) != 10 {
		t.Fatalf("got %d scheduled entries, want 10", len(scheduled))
	}
	if got := len(store.inserted["viral_content_schedule"]); got != 10 {
		t.Fatalf("got %d inserted rows, want 10", got)
	}

	for i, entry := range scheduled {
		if entry.Status != domain.PostScheduled {
			t.Fatalf("entry %d status = %s, want scheduled", i, entry.Status)
		}
		want := now.Add(time.Duration(i) * 2 * time.Hour)
		if !entry.ScheduledTime.Equal(want) {
			t.Fatalf("entry %d scheduled at %v, want %v", i, entry.ScheduledTime, want)
		}
		if i > 0 && entry.ViralPotential > scheduled[i-1].ViralPotential {
			t.Fatalf("entry %d potential %v exceeds previous %v", i, entry.ViralPotential, scheduled[i-1].ViralPotential)
		}
	}
}

func TestScheduleViralContentAppends(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	creator := NewCreator(store, fixedRand{}, nil)
	now := time.Now()

	for i := 0; i < 2; i++ {
		if _, err := creator.ScheduleViralContent(context.Background(), now); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}
	if got := len(store.inserted["viral_content_schedule"]); got != 20 {
		t.Fatalf("got %d rows after two runs, want 20 (no dedup)", got)
	}
}
