package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMemory(t *testing.T) {
	tests := []struct {
		name string
		kib  float64
		want string
	}{
		{name: "zero", kib: 0, want: "0Ki"},
		{name: "small", kib: 512, want: "512Ki"},
		{name: "fractional kib", kib: 999.5, want: "999.5Ki"},
		{name: "ki boundary", kib: 1000, want: "1000Ki"},
		{name: "just above ki boundary", kib: 1001, want: "0.98Mi"},
		{name: "mebibytes", kib: 102396, want: "100.00Mi"},
		{name: "mi boundary", kib: 1000000, want: "976.56Mi"},
		{name: "just above mi boundary", kib: 1000001, want: "0.95Gi"},
		{name: "gibibytes", kib: 3884328, want: "3.70Gi"},
		{name: "exact gibibytes", kib: 16 * 1048576, want: "16.00Gi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMemory(tt.kib))
		})
	}
}

func TestFormatMemory_Suffixes(t *testing.T) {
	for v := 0.0; v <= 2000000; v += 997 {
		got := FormatMemory(v)
		switch {
		case v > 1000000:
			assert.True(t, strings.HasSuffix(got, "Gi"), "%v -> %s", v, got)
		case v > 1000:
			assert.True(t, strings.HasSuffix(got, "Mi"), "%v -> %s", v, got)
		default:
			assert.True(t, strings.HasSuffix(got, "Ki"), "%v -> %s", v, got)
		}
	}
}

func TestNewTotalMemory(t *testing.T) {
	total := NewTotalMemory(Memory{RAMKiB: 3884328, SwapKiB: 0})

	assert.Equal(t, 3884328.0, total.RAMKiB)
	assert.Equal(t, "3.70Gi", total.RAMUnit)
	assert.Equal(t, "0Ki", total.SwapUnit)
}
