package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBucketMax(t *testing.T) {
	tests := []struct {
		bucket string
		want   int
	}{
		{"0", 0},
		{"1–5", 5},  // en dash as sent by the UI
		{"6–20", 20},
		{"1-5", 5}, // plain hyphen accepted too
		{"6-20", 20},
		{"20+", 20},
		{"5", 5},
		{"", 0},
		{"   ", 0},
		{"garbage", 0},
		{"–20", 20}, // degenerate range still reads the upper bound
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseBucketMax(tt.bucket), "bucket %q", tt.bucket)
	}
}
