package debug

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personal-diary/internal/logger"
)

func TestTimingTrackerRecords(t *testing.T) {
	tt := NewTimingTracker(logger.NoOp{})

	stop := tt.Track("save")
	time.Sleep(time.Millisecond)
	stop()
	tt.Track("save")()

	timings := tt.GetTimings("save")
	require.Len(t, timings, 2)
	assert.GreaterOrEqual(t, timings[0], time.Millisecond)
	assert.Greater(t, tt.GetAverageTime("save"), time.Duration(0))

	tt.Track("view")()
	assert.Equal(t, []string{"save", "view"}, tt.Operations())
	assert.Zero(t, tt.GetAverageTime("search"))
}

func TestTimingTrackerDisabled(t *testing.T) {
	tt := NewTimingTracker(logger.NoOp{})
	tt.SetEnabled(false)

	tt.Track("view")()

	assert.Nil(t, tt.GetTimings("view"))
}

func TestFileTrackerOpenClose(t *testing.T) {
	ft := NewFileTracker(logger.NoOp{})

	ft.TrackOpen("diary.txt", 7)
	ft.TrackOpen("diary.txt", 8)
	require.Len(t, ft.GetOpenFiles(), 2)

	ft.TrackClose("diary.txt", 7)
	open := ft.GetOpenFiles()
	require.Len(t, open, 1)
	assert.Equal(t, uintptr(8), open[0].Handle)
}

func TestFileTrackerDisabledIgnoresEvents(t *testing.T) {
	ft := NewFileTracker(logger.NoOp{})
	ft.SetEnabled(false)

	ft.TrackOpen("diary.txt", 1)

	assert.Empty(t, ft.GetOpenFiles())
}

func TestCoordinator(t *testing.T) {
	dc := NewCoordinator(Config{EnableFileTracking: true}, nil)

	assert.IsType(t, logger.NoOp{}, dc.Logger())
	dc.FileTracker().TrackOpen("diary.txt", 3)
	dc.TimingTracker().Track("noop")()

	assert.Nil(t, dc.TimingTracker().GetTimings("noop"))
	assert.Len(t, dc.FileTracker().GetOpenFiles(), 1)
	dc.Shutdown()

	assert.NotNil(t, Discard().Logger())
}

func TestCoordinatorShutdownReport(t *testing.T) {
	var buf bytes.Buffer
	dc := NewCoordinator(Config{EnableTimingTracking: true, EnableFileTracking: true},
		logger.NewZerolog(&buf, zerolog.InfoLevel))

	dc.TimingTracker().Track("save")()
	dc.FileTracker().TrackOpen("diary.txt", 5)

	dc.Shutdown()

	out := buf.String()
	assert.Contains(t, out, `"operation":"save"`)
	assert.Contains(t, out, `"count":1`)
	assert.Contains(t, out, "diary file handle still open at shutdown")
}
