package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenOrderNumber_Format(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	nomor := GenOrderNumber(now)

	re := regexp.MustCompile(`^RC-\d{13}-[0-9A-F]{9}$`)
	assert.Regexp(t, re, nomor)
	assert.Contains(t, nomor, "RC-1748772000000-")
}

func TestGenOrderNumber_Unique(t *testing.T) {
	now := time.Now()
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		nomor := GenOrderNumber(now)
		assert.False(t, seen[nomor], "nomor duplikat: %s", nomor)
		seen[nomor] = true
	}
}
