package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jovens-paroquia/membership/internal/core/domain"
)

func TestProfileReader_NotAuthenticated(t *testing.T) {
	reader := NewProfileReader(newStubProfileStore(), "app")

	if _, err := reader.Current(context.Background(), ""); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestProfileReader_Current(t *testing.T) {
	store := newStubProfileStore()
	store.docs[domain.ProfilesPath("app")+"/uid-1"] = map[string]any{
		"fullName": "Maria Souza",
		"city":     "Recife",
		"isAdmin":  false,
	}
	reader := NewProfileReader(store, "app")

	p, err := reader.Current(context.Background(), "uid-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.FullName != "Maria Souza" || p.City != "Recife" {
		t.Fatalf("unexpected profile %+v", p)
	}
}

func TestProfileReader_OrphanAccount(t *testing.T) {
	reader := NewProfileReader(newStubProfileStore(), "app")

	if _, err := reader.Current(context.Background(), "orphan"); !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}
