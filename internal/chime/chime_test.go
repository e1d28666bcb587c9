package chime

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/cursorlock/internal/errs"
)

type recordedBeep struct {
	freq     float64
	duration int
}

func newRecordingPlayer(enabled bool, fail error) (*Player, *[]recordedBeep) {
	var calls []recordedBeep
	p := &Player{
		enabled: enabled,
		beep: func(freq float64, duration int) error {
			calls = append(calls, recordedBeep{freq, duration})
			return fail
		},
	}
	return p, &calls
}

func TestNotify(t *testing.T) {
	t.Run("disabled player is silent", func(t *testing.T) {
		p, calls := newRecordingPlayer(false, nil)
		require.NoError(t, p.Notify(Activated))
		require.NoError(t, p.Notify(Deactivated))
		assert.Empty(t, *calls)
	})

	t.Run("activation rises and deactivation falls", func(t *testing.T) {
		p, calls := newRecordingPlayer(true, nil)

		require.NoError(t, p.Notify(Activated))
		require.Len(t, *calls, 2)
		assert.Less(t, (*calls)[0].freq, (*calls)[1].freq)

		*calls = nil
		require.NoError(t, p.Notify(Deactivated))
		require.Len(t, *calls, 2)
		assert.Greater(t, (*calls)[0].freq, (*calls)[1].freq)
	})

	t.Run("failures are notification errors", func(t *testing.T) {
		base := errors.New("no speaker")
		p, calls := newRecordingPlayer(true, base)

		err := p.Notify(Deactivated)
		require.Error(t, err)
		assert.ErrorIs(t, err, base)
		assert.Len(t, *calls, 1, "should stop at the first failing tone")

		var notifErr *errs.NotificationError
		require.ErrorAs(t, err, &notifErr)
		assert.Equal(t, "deactivated", notifErr.Kind)
		assert.False(t, errs.IsFatal(err))
	})

	t.Run("unknown kind", func(t *testing.T) {
		p, _ := newRecordingPlayer(true, nil)
		assert.Error(t, p.Notify(Kind(42)))
	})
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "activated", Activated.String())
	assert.Equal(t, "deactivated", Deactivated.String())
	assert.Equal(t, "kind(7)", Kind(7).String())
}
