package util

import (
	"runtime/debug"
)

const shortHashLength = 7

// buildSetting returns a setting recorded by the go toolchain in the binary
func buildSetting(key string) (string, bool) {
	info, available := debug.ReadBuildInfo()
	if !available {
		return "", false
	}
	for _, setting := range info.Settings {
		if setting.Key == key {
			return setting.Value, true
		}
	}
	return "", false
}

// ShortHash abbreviates a vcs revision. Short or empty revisions are kept as is.
func ShortHash(revision string) string {
	if revision == "" {
		return "unknown"
	}
	if len(revision) <= shortHashLength {
		return revision
	}
	return revision[:shortHashLength]
}

// GetFullVersion returns <module version>-<short revision>, with a +dirty suffix for modified trees.
func GetFullVersion() string {
	version := "unknown"
	if info, available := debug.ReadBuildInfo(); available && info.Main.Version != "" {
		version = info.Main.Version
	}

	revision, _ := buildSetting("vcs.revision")
	full := version + "-" + ShortHash(revision)

	if modified, ok := buildSetting("vcs.modified"); ok && modified == "true" {
		full += "+dirty"
	}

	return full
}
