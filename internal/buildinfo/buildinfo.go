package buildinfo

// Version is set at build time via -ldflags.
var Version = "dev"

// Short returns a compact build identifier for window titles.
func Short() string {
	if Version == "" {
		return "dev"
	}
	return Version
}
