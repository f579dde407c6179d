package database

import (
	"context"
	"testing"
)

func TestEmptyURLsDisableBackends(t *testing.T) {
	ctx := context.Background()

	db, err := NewPostgres(ctx, "")
	if err != nil || db != nil {
		t.Fatalf("expected nil db without error, got %v, %v", db, err)
	}
	ClosePostgres(db)

	rdb, err := NewRedis(ctx, "")
	if err != nil || rdb != nil {
		t.Fatalf("expected nil client without error, got %v, %v", rdb, err)
	}
	CloseRedis(rdb)
}

func TestNewRedisRejectsBadURL(t *testing.T) {
	if _, err := NewRedis(context.Background(), "http://not-redis"); err == nil {
		t.Fatal("expected parse error")
	}
}
