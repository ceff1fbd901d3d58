package version

// injected via ldflags on release builds
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var FullVersion = Version + " (" + Commit + ", " + Date + ")"
