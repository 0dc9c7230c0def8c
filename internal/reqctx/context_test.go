package reqctx

import (
	"context"
	"testing"
)

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	if RID(ctx) != "" || Object(ctx) != "" {
		t.Fatal("empty context should have no values")
	}
	ctx = WithObject(WithRID(ctx, "abc"), "M42")
	if RID(ctx) != "abc" {
		t.Fatalf("rid=%q", RID(ctx))
	}
	if Object(ctx) != "M42" {
		t.Fatalf("object=%q", Object(ctx))
	}
}
