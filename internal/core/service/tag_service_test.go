package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bloghub/blog-api/internal/core/domain"
)

type tagFixture struct {
	*authzFixture
	tags *stubTagRepo
	svc  *TagService
}

func newTagFixture() *tagFixture {
	f := &tagFixture{authzFixture: newAuthzFixture(), tags: newStubTagRepo()}
	f.svc = NewTagService(f.tags, f.authzFixture.svc, zerolog.Nop())
	return f
}

func TestTagService_ReadsArePublic(t *testing.T) {
	f := newTagFixture()
	tag := f.tags.add("go")

	// No principal at all.
	got, err := f.svc.Get(context.Background(), tag.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Name != "go" {
		t.Fatalf("unexpected tag: %+v", got)
	}

	all, err := f.svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 tag, got %d", len(all))
	}
}

func TestTagService_MutationsRequireAdmin(t *testing.T) {
	f := newTagFixture()
	tag := f.tags.add("go")

	if _, err := f.svc.Create(f.ctxFor(f.owner), "rust"); !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied for Create, got %v", err)
	}
	if _, err := f.svc.Update(f.ctxFor(f.owner), tag.ID, "golang"); !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied for Update, got %v", err)
	}
	if err := f.svc.Delete(f.ctxFor(f.owner), tag.ID); !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied for Delete, got %v", err)
	}
}

func TestTagService_AdminCRUD(t *testing.T) {
	f := newTagFixture()
	ctx := f.ctxFor(f.admin)

	tag, err := f.svc.Create(ctx, "go")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if tag.ID == "" || tag.Name != "go" {
		t.Fatalf("unexpected tag: %+v", tag)
	}

	renamed, err := f.svc.Update(ctx, tag.ID, "golang")
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if renamed.Name != "golang" {
		t.Fatalf("expected rename, got %+v", renamed)
	}

	if err := f.svc.Delete(ctx, tag.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := f.svc.Get(ctx, tag.ID); !errors.Is(err, domain.ErrTagNotFound) {
		t.Fatalf("expected ErrTagNotFound, got %v", err)
	}
}

func TestTagService_UpdateMissing(t *testing.T) {
	f := newTagFixture()

	if _, err := f.svc.Update(f.ctxFor(f.admin), "missing", "x"); !errors.Is(err, domain.ErrTagNotFound) {
		t.Fatalf("expected ErrTagNotFound, got %v", err)
	}
	if err := f.svc.Delete(f.ctxFor(f.admin), "missing"); !errors.Is(err, domain.ErrTagNotFound) {
		t.Fatalf("expected ErrTagNotFound, got %v", err)
	}
}
