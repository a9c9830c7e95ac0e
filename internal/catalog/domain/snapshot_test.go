package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot_Fresh(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		timestamp int64
		want      bool
	}{
		{"just written", now.UnixMilli(), true},
		{"inside the window", now.Add(-23 * time.Hour).UnixMilli(), true},
		{"exactly at the TTL", now.Add(-SnapshotTTL).UnixMilli(), false},
		{"past the TTL", now.Add(-25 * time.Hour).UnixMilli(), false},
		{"clock skew into the future", now.Add(time.Hour).UnixMilli(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := &Snapshot{Timestamp: tt.timestamp}
			assert.Equal(t, tt.want, snap.Fresh(now))
		})
	}
}

func TestNewSnapshot_StampsCurrentTime(t *testing.T) {
	snap := NewSnapshot([]RawProduct{{ID: "p1"}}, nil)

	assert.True(t, snap.Fresh(time.Now()))
	assert.Len(t, snap.Products, 1)
}
