package mongo

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/jovens-paroquia/membership/internal/core/domain"
)

const profilesPath = "artifacts/app-1/public/data/user_profiles"

func TestCollectionName(t *testing.T) {
	cases := map[string]string{
		profilesPath:      "artifacts.app-1.public.data.user_profiles",
		"/leading/slash/": "leading.slash",
		"flat":            "flat",
	}
	for in, want := range cases {
		if got := CollectionName(in); got != want {
			t.Errorf("CollectionName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestProfileRepository_UpsertDocument(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
			bson.E{Key: "upserted", Value: bson.A{bson.D{{Key: "index", Value: 0}, {Key: "_id", Value: "uid-1"}}}},
		))
		repo := NewProfileRepository(mt.DB)

		err := repo.UpsertDocument(context.Background(), profilesPath, "uid-1", map[string]any{"fullName": "Ana"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		started := mt.GetStartedEvent()
		if started == nil || started.CommandName != "update" {
			t.Fatalf("expected an update command, got %+v", started)
		}
		if coll := started.Command.Lookup("update").StringValue(); coll != "artifacts.app-1.public.data.user_profiles" {
			t.Errorf("collection = %q", coll)
		}
	})

	mt.Run("write error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    13,
			Message: "unauthorized",
		}))
		repo := NewProfileRepository(mt.DB)

		err := repo.UpsertDocument(context.Background(), profilesPath, "uid-1", map[string]any{"fullName": "Ana"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestProfileRepository_FindDocument(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ns := "db.artifacts.app-1.public.data.user_profiles"

	mt.Run("found", func(mt *mtest.T) {
		created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "uid-1"},
			{Key: "fullName", Value: "Ana Souza"},
			{Key: "isAdmin", Value: false},
			{Key: "createdAt", Value: primitive.NewDateTimeFromTime(created)},
		}))
		repo := NewProfileRepository(mt.DB)

		got, err := repo.FindDocument(context.Background(), profilesPath, "uid-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := got["_id"]; ok {
			t.Error("_id must not be returned")
		}
		record := domain.ProfileRecordFromFields(got)
		if record.FullName != "Ana Souza" {
			t.Errorf("FullName = %q", record.FullName)
		}
		if !record.CreatedAt.Equal(created) {
			t.Errorf("CreatedAt = %v, want %v", record.CreatedAt, created)
		}
	})

	mt.Run("not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))
		repo := NewProfileRepository(mt.DB)

		_, err := repo.FindDocument(context.Background(), profilesPath, "missing")
		if !errors.Is(err, domain.ErrProfileNotFound) {
			t.Fatalf("expected ErrProfileNotFound, got %v", err)
		}
	})
}

func TestConnect_InvalidURI(t *testing.T) {
	_, _, err := Connect(context.Background(), Config{URI: "not-a-mongo-uri", Database: "membership", Timeout: time.Second})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
