package mapper

import (
	"regexp"
	"strconv"
	"strings"
)

// ParseBool coerces build-sheet truthiness to a boolean. The sheets
// encode booleans as the numerals 1/0; text forms are accepted too. The
// fallback is returned for anything unrecognized.
func ParseBool(s string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	}
	return fallback
}

// ParseInt coerces a numeric-looking value, returning the fallback when
// the value is not a whole number. Float-formatted integers ("90.0") are
// accepted since spreadsheet readers emit them for plain numbers.
func ParseInt(s string, fallback int) int {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int(f)) {
		return int(f)
	}
	return fallback
}

var (
	invalidNameChars = regexp.MustCompile(`[^a-z0-9-]`)
	repeatedHyphens  = regexp.MustCompile(`-+`)
)

// NormalizeResourceName lowercases a name, replaces spaces and
// underscores with hyphens, strips everything outside [a-z0-9-], and caps
// the result at the 60-character Azure resource name limit.
func NormalizeResourceName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, " ", "-")
	normalized = strings.ReplaceAll(normalized, "_", "-")
	normalized = invalidNameChars.ReplaceAllString(normalized, "")
	normalized = repeatedHyphens.ReplaceAllString(normalized, "-")
	normalized = strings.Trim(normalized, "-")

	if normalized == "" {
		return "default-resource"
	}
	if len(normalized) > 60 {
		normalized = strings.TrimRight(normalized[:60], "-")
	}
	return normalized
}

var hostnameSanitizer = regexp.MustCompile(`[^\w-]`)

// sanitizeHostname keeps word characters and hyphens, replacing the rest
// with hyphens.
func sanitizeHostname(name string) string {
	return hostnameSanitizer.ReplaceAllString(strings.TrimSpace(name), "-")
}

// inferOSType classifies an OS image description as windows or linux.
// Empty means unclassified.
func inferOSType(image string) string {
	lower := strings.ToLower(image)
	switch {
	case strings.Contains(lower, "windows") || strings.Contains(lower, "win"):
		return "windows"
	case strings.Contains(lower, "linux") || strings.Contains(lower, "ubuntu") ||
		strings.Contains(lower, "rhel") || strings.Contains(lower, "centos"):
		return "linux"
	}
	return ""
}

// imageURN maps an OS type to its marketplace image urn.
func imageURN(osType string) string {
	if osType == "linux" {
		return "Canonical:0001-com-ubuntu-server-jammy:22_04-lts-gen2:latest"
	}
	return "MicrosoftWindowsServer:WindowsServer:2022-datacenter-g2:latest"
}

// looksLikeSKU reports whether a value looks like an Azure VM SKU.
func looksLikeSKU(s string) bool {
	return strings.Contains(s, "Standard_") || strings.Contains(s, "Basic_")
}
