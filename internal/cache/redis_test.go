package cache

import (
	"context"
	"testing"

	"github.com/shoplite/internal/config"
)

func TestDisabledCacheIsNoop(t *testing.T) {
	if err := InitRedis(&config.RedisConfig{Enabled: false}); err != nil {
		t.Fatalf("init disabled redis failed: %v", err)
	}
	if Enabled() {
		t.Fatalf("cache should be disabled")
	}
	if Client() != nil {
		t.Fatalf("disabled cache should have no client")
	}

	ctx := context.Background()
	var dest []string
	hit, err := GetJSON(ctx, "roles:list", &dest)
	if err != nil || hit {
		t.Fatalf("disabled GetJSON want miss without error, got hit=%v err=%v", hit, err)
	}
	if err := SetJSON(ctx, "roles:list", []string{"admin"}, 0); err != nil {
		t.Fatalf("disabled SetJSON should be a no-op, got %v", err)
	}
	if err := Del(ctx, "roles:list"); err != nil {
		t.Fatalf("disabled Del should be a no-op, got %v", err)
	}
}

func TestPrefixedKey(t *testing.T) {
	if got := prefixed("roles:list"); got != keyPrefix+":roles:list" {
		t.Fatalf("prefixed key want %s:roles:list got %s", keyPrefix, got)
	}
	if got := prefixed("  "); got != keyPrefix {
		t.Fatalf("blank key should collapse to the prefix, got %s", got)
	}
}
