package diag

import (
	"os"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// ProfilerAddr is where the runtime dashboard listens
const ProfilerAddr = "localhost:18066"

// ProfilerEnabled reports whether the dashboard was requested by flag or PPROF_ENABLED
func ProfilerEnabled(flagged bool) bool {
	return flagged || os.Getenv("PPROF_ENABLED") != ""
}

// StartProfiler serves the statsview runtime dashboard in the background
// The returned stop function shuts it down
func StartProfiler() (stop func()) {
	// Configuration must be set before statsview.New
	viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(ProfilerAddr))
	mgr := statsview.New()
	Go(func() {
		mgr.Start()
	})
	return mgr.Stop
}
