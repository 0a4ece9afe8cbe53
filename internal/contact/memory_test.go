package contact

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	sub := &Submission{
		Email:     "ada@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Message:   "hello",
	}
	if err := store.Put(ctx, sub); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Get(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *got != *sub {
		t.Fatalf("got %+v, want %+v", got, sub)
	}
}

func TestMemoryStore_PutReplacesFully(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first := &Submission{
		Email:     "ada@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Company:   "Analytical Engines Ltd",
		JobTitle:  "Mathematician",
	}
	if err := store.Put(ctx, first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second := &Submission{
		Email:     "ada@example.com",
		FirstName: "Ada",
		LastName:  "King",
	}
	if err := store.Put(ctx, second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Get(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Company != "" || got.JobTitle != "" {
		t.Fatalf("optional fields from the first write leaked into the replacement: %+v", got)
	}
	if got.LastName != "King" {
		t.Fatalf("expected replacement record, got %+v", got)
	}
}

func TestMemoryStore_GetNotFound(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.Get(context.Background(), "nobody@example.com")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStore_ListOrdered(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for _, sub := range []*Submission{
		{Email: "grace@example.com", FirstName: "Grace", LastName: "Hopper"},
		{Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"},
	} {
		if err := store.Put(ctx, sub); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	subs, err := store.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(subs) != 2 || subs[0].Email != "ada@example.com" || subs[1].Email != "grace@example.com" {
		t.Fatalf("expected submissions ordered by email, got %+v", subs)
	}
}
