package ens

import (
	"fmt"
	"regexp"
	"strings"
)

// ENSIP-5 global and service keys
var (
	GlobalTextKeys  = []string{"avatar", "description", "display", "email", "keywords", "mail", "notice", "location", "phone", "url", "header"}
	ServiceTextKeys = []string{"com.github", "com.twitter", "com.discord", "io.keybase", "org.telegram", "com.reddit", "com.linkedin", "com.warpcast"}

	standardTextKeys = map[string]bool{}
	reverseDnsKey    = regexp.MustCompile(`(?i)^[a-z]{2,}(\.[a-z0-9-]+)+$`)
)

func init() {
	for _, k := range GlobalTextKeys {
		standardTextKeys[k] = true
	}
	for _, k := range ServiceTextKeys {
		standardTextKeys[k] = true
	}
}

// TextKeyWarning is empty for standard and reverse-dns keys. Other keys are still allowed.
func TextKeyWarning(key string) string {
	if standardTextKeys[key] || reverseDnsKey.MatchString(key) {
		return ""
	}
	return fmt.Sprintf("%q is not a standard ENSIP-5 key. Standard keys: %s. Custom keys should use reverse-DNS format (e.g. com.myapp).",
		key, strings.Join(GlobalTextKeys, ", "))
}
