package plugin

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	apperrors "github.com/layoutlab/nodekit/internal/errors"
)

// DevVersion is the version reported by unreleased builds. It satisfies every
// min_host_version requirement.
const DevVersion = "dev"

// CompareVersions compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
func CompareVersions(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// CheckHost returns IncompatibleHost when m requires a newer host than
// hostVersion.
func CheckHost(m *Manifest, hostVersion string) error {
	if m.MinHostVersion == "" || hostVersion == "" || hostVersion == DevVersion {
		return nil
	}
	cmp, err := CompareVersions(hostVersion, m.MinHostVersion)
	if err != nil {
		return fmt.Errorf("checking host compatibility for %s: %w", m.Name, err)
	}
	if cmp < 0 {
		return apperrors.IncompatibleHost(m.Name, m.MinHostVersion, hostVersion)
	}
	return nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
