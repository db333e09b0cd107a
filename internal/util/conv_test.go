package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		in      string
		want    uint
		wantErr bool
	}{
		{in: "7", want: 7},
		{in: "0", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseID(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTimeParam(t *testing.T) {
	got, err := ParseTimeParam("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseTimeParam("2024-03-05")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)))

	got, err = ParseTimeParam("2024-03-05 13:30:00")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 3, 5, 13, 30, 0, 0, time.UTC)))

	got, err = ParseTimeParam("2024-03-05T13:30:00+08:00")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, 5, got.Hour())

	_, err = ParseTimeParam("05/03/2024")
	assert.Error(t, err)
}
