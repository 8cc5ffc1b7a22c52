package buildinfo

// Preenchidos via -ldflags no build
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
