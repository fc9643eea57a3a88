// Package version carries the build version, set with
// -ldflags "-X github.com/bnema/medicapp-cli/internal/version.Version=v1.2.3".
package version

var Version = "dev"

// UserAgent is sent with every API request.
func UserAgent() string {
	return "medicapp-cli/" + Version
}
