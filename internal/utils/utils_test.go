package utils

import (
	"testing"
	"time"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("password stored in plaintext")
	}
	if !CheckPasswordHash("s3cret", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("wrong password accepted")
	}
}

func TestStringToInt(t *testing.T) {
	if got := StringToInt("1992"); got != 1992 {
		t.Errorf("expected 1992, got %d", got)
	}
	if got := StringToInt(""); got != 0 {
		t.Errorf("expected 0 for empty string, got %d", got)
	}
	if got := StringToInt("not a number"); got != 0 {
		t.Errorf("expected 0 for garbage, got %d", got)
	}
}

func TestCacheExpiry(t *testing.T) {
	cache := NewCache(8)

	cache.Set("fresh", "value", time.Minute)
	if got := cache.Get("fresh"); got != "value" {
		t.Errorf("expected cached value, got %v", got)
	}

	cache.Set("stale", "value", -time.Second)
	if got := cache.Get("stale"); got != nil {
		t.Errorf("expected expired entry to be dropped, got %v", got)
	}

	cache.Delete("fresh")
	if got := cache.Get("fresh"); got != nil {
		t.Errorf("expected deleted entry to be gone, got %v", got)
	}
}
