package clip

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/cursorlock/internal/chime"
	"github.com/bnema/cursorlock/internal/errs"
)

// fakeClipper records the confinement the OS would hold
type fakeClipper struct {
	mu       sync.Mutex
	current  *Region
	clips    int
	releases int
	clipErr  error
	relErr   error
}

func (f *fakeClipper) Clip(r Region) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.clipErr != nil {
		return f.clipErr
	}
	f.clips++
	f.current = &r
	return nil
}

func (f *fakeClipper) Release() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.relErr != nil {
		return f.relErr
	}
	f.releases++
	f.current = nil
	return nil
}

type fakeNotifier struct {
	kinds []chime.Kind
	err   error
}

func (f *fakeNotifier) Notify(kind chime.Kind) error {
	f.kinds = append(f.kinds, kind)
	return f.err
}

func TestRegionFromBounds(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int32
		want       Region
		wantErr    bool
	}{
		{"primary full hd", 0, 0, 1920, 1080, Region{0, 0, 1920, 1080}, false},
		{"left of primary", -2560, 0, 2560, 1440, Region{-2560, 0, 0, 1440}, false},
		{"above primary", 0, -1080, 1920, 1080, Region{0, -1080, 1920, 0}, false},
		{"zero width", 0, 0, 0, 1080, Region{}, true},
		{"negative height", 0, 0, 1920, -1, Region{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RegionFromBounds(tt.x, tt.y, tt.w, tt.h)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
			assert.Equal(t, tt.w, got.Width())
			assert.Equal(t, tt.h, got.Height())
		})
	}
}

func TestRegionString(t *testing.T) {
	r := Region{Left: -1920, Top: 0, Right: 0, Bottom: 1080}
	assert.Equal(t, "1920x1080 at -1920,0", r.String())
}

func TestController(t *testing.T) {
	region := Region{0, 0, 1920, 1080}

	t.Run("activate confines and chimes", func(t *testing.T) {
		clipper := &fakeClipper{}
		notifier := &fakeNotifier{}
		c := NewController(clipper, notifier)

		require.NoError(t, c.Activate(region))
		require.NotNil(t, clipper.current)
		assert.Equal(t, region, *clipper.current)
		assert.Equal(t, []chime.Kind{chime.Activated}, notifier.kinds)
	})

	t.Run("activate twice is idempotent", func(t *testing.T) {
		clipper := &fakeClipper{}
		c := NewController(clipper, nil)

		require.NoError(t, c.Activate(region))
		first := *clipper.current
		require.NoError(t, c.Activate(region))

		assert.Equal(t, first, *clipper.current)
		assert.Equal(t, 2, clipper.clips)
	})

	t.Run("deactivate releases and chimes", func(t *testing.T) {
		clipper := &fakeClipper{}
		notifier := &fakeNotifier{}
		c := NewController(clipper, notifier)

		require.NoError(t, c.Activate(region))
		require.NoError(t, c.Deactivate())
		assert.Nil(t, clipper.current)
		assert.Equal(t, []chime.Kind{chime.Activated, chime.Deactivated}, notifier.kinds)
	})

	t.Run("reassert is silent", func(t *testing.T) {
		clipper := &fakeClipper{}
		notifier := &fakeNotifier{}
		c := NewController(clipper, notifier)

		require.NoError(t, c.Reassert(region))
		assert.Equal(t, region, *clipper.current)
		assert.Empty(t, notifier.kinds)
	})

	t.Run("os failure is an OsCallError and skips the chime", func(t *testing.T) {
		base := errors.New("access denied")
		clipper := &fakeClipper{clipErr: base, relErr: base}
		notifier := &fakeNotifier{}
		c := NewController(clipper, notifier)

		for _, err := range []error{c.Activate(region), c.Deactivate(), c.Reassert(region)} {
			var osErr *errs.OsCallError
			require.ErrorAs(t, err, &osErr)
			assert.ErrorIs(t, err, base)
		}
		assert.Empty(t, notifier.kinds)
	})

	t.Run("chime failure does not fail the call", func(t *testing.T) {
		clipper := &fakeClipper{}
		notifier := &fakeNotifier{err: &errs.NotificationError{Kind: "activated", Err: errors.New("mute")}}
		c := NewController(clipper, notifier)

		assert.NoError(t, c.Activate(region))
		assert.NoError(t, c.Deactivate())
	})
}
