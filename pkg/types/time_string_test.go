package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid", input: "13:30"},
		{name: "midnight", input: "00:00"},
		{name: "no leading zero", input: "9:00", wantErr: true},
		{name: "seconds", input: "13:30:00", wantErr: true},
		{name: "out of range", input: "25:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("12:00").IsBefore("13:30"))
	assert.False(t, TimeString("13:30").IsBefore("13:30"))
	assert.True(t, TimeString("22:30").IsAfter("21:00"))
	assert.False(t, TimeString("bad").IsBefore("13:30"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("12:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("13:30"), got)

	_, err = TimeString("22:30").AddMinutes(90)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("13:30:00"))
	assert.Equal(t, TimeString("13:30"), ts)

	require.NoError(t, ts.Scan([]byte("12:00")))
	assert.Equal(t, TimeString("12:00"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 21, 0, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("21:00"), ts)

	assert.Error(t, ts.Scan(42))
}
