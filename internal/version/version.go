package version

// Version can be overridden at build time via ldflags:
// go build -ldflags="-X deskmcp/internal/version.Version=vX.Y.Z"
var Version = "0.2.0"

// Get returns the current version
func Get() string {
	if Version == "" {
		return "dev"
	}
	return Version
}
