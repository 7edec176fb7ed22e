package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBookingState(t *testing.T) {
	for _, s := range []string{"ALL", "CURRENT", "PAST", "FUTURE", "WAITING", "REJECTED"} {
		state, ok := ParseBookingState(s)
		require.True(t, ok, s)
		require.Equal(t, BookingState(s), state)
	}

	for _, s := range []string{"", "all", "APPROVED", "SOMETHING"} {
		_, ok := ParseBookingState(s)
		require.False(t, ok, s)
	}
}
