package display

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/cursorlock/internal/clip"
	"github.com/bnema/cursorlock/internal/errs"
)

type fakeBackend struct {
	monitors []*Monitor
	err      error
	closed   bool
}

func (f *fakeBackend) GetMonitors() ([]*Monitor, error) {
	return f.monitors, f.err
}

func (f *fakeBackend) Close() error {
	f.closed = true
	return nil
}

func threeMonitors() []*Monitor {
	return []*Monitor{
		{ID: "b", Name: "DELL U2720Q", X: 1920, Y: 0, Width: 2560, Height: 1440},
		{ID: "a", Name: "Generic PnP Monitor", X: 0, Y: 0, Width: 1920, Height: 1080},
		{ID: "c", Name: "LG HDR 4K", X: -1920, Y: 200, Width: 1920, Height: 1080},
	}
}

func TestNewWithBackend(t *testing.T) {
	t.Run("sorts left to right and picks primary", func(t *testing.T) {
		d, err := NewWithBackend(&fakeBackend{monitors: threeMonitors()})
		require.NoError(t, err)

		ids := []string{}
		for _, m := range d.GetMonitors() {
			ids = append(ids, m.ID)
		}
		assert.Equal(t, []string{"c", "a", "b"}, ids)
		assert.Equal(t, "a", d.GetPrimaryMonitor().ID)
	})

	t.Run("keeps OS primary flag", func(t *testing.T) {
		mons := threeMonitors()
		mons[0].Primary = true
		d, err := NewWithBackend(&fakeBackend{monitors: mons})
		require.NoError(t, err)
		assert.Equal(t, "b", d.GetPrimaryMonitor().ID)
	})

	t.Run("no monitors", func(t *testing.T) {
		backend := &fakeBackend{}
		_, err := NewWithBackend(backend)
		assert.ErrorIs(t, err, errs.ErrNoDisplay)
		assert.True(t, backend.closed)
	})

	t.Run("backend error", func(t *testing.T) {
		backend := &fakeBackend{err: errors.New("enum failed")}
		_, err := NewWithBackend(backend)
		assert.Error(t, err)
		assert.True(t, backend.closed)
	})
}

func TestSortMonitorsTiesOnX(t *testing.T) {
	mons := []*Monitor{
		{ID: "lower", X: 0, Y: 1080, Width: 1920, Height: 1080},
		{ID: "upper", X: 0, Y: 0, Width: 1920, Height: 1080},
	}
	SortMonitors(mons)
	assert.Equal(t, "upper", mons[0].ID)
	assert.Equal(t, "lower", mons[1].ID)
}

func TestSelect(t *testing.T) {
	d, err := NewWithBackend(&fakeBackend{monitors: threeMonitors()})
	require.NoError(t, err)

	m, err := d.Select(1)
	require.NoError(t, err)
	assert.Equal(t, "c", m.ID)

	m, err = d.Select(3)
	require.NoError(t, err)
	assert.Equal(t, "b", m.ID)

	for _, idx := range []int{0, 4, -1} {
		_, err := d.Select(idx)
		assert.ErrorIs(t, err, errs.ErrInvalidSelection, "index %d", idx)
	}
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{" 2\n", 2, false},
		{"3", 3, false},
		{"0", 0, true},
		{"4", 0, true},
		{"two", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSelection(tt.input, 3)
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidSelection)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMonitorRegion(t *testing.T) {
	m := &Monitor{Name: "LG HDR 4K", X: -1920, Y: 200, Width: 1920, Height: 1080}

	r, err := m.Region()
	require.NoError(t, err)
	assert.Equal(t, clip.Region{Left: -1920, Top: 200, Right: 0, Bottom: 1280}, r)
	assert.Equal(t, "LG HDR 4K (1920x1080, pos: -1920x200)", m.Describe())

	_, err = (&Monitor{Width: 0, Height: 1080}).Region()
	assert.Error(t, err)
}
