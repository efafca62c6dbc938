package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/vincent-herlemont/cli-integration-test/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/vincent-herlemont/cli-integration-test/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/vincent-herlemont/cli-integration-test/internal/version.Date={{.Date}}
)
