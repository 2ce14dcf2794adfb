package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_Scan(t *testing.T) {
	want := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

	tests := []struct {
		name string
		src  any
	}{
		{name: "time value", src: want},
		{name: "sqlite default", src: "2024-05-06 07:08:09"},
		{name: "bytes", src: []byte("2024-05-06 07:08:09")},
		{name: "rfc3339", src: "2024-05-06T07:08:09Z"},
		{name: "driver format", src: "2024-05-06 07:08:09+00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got time.Time
			require.NoError(t, timestamp{&got}.Scan(tt.src))
			assert.True(t, want.Equal(got), "got %v", got)
		})
	}
}

func TestTimestamp_ScanInvalid(t *testing.T) {
	var got time.Time
	assert.Error(t, timestamp{&got}.Scan("yesterday"))
	assert.Error(t, timestamp{&got}.Scan(42))
}
