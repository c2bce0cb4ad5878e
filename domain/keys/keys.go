package keys

import (
	"strings"
)

const (
	// PfxHealthCheck is used for prefixing health check redis key
	PfxHealthCheck = "healthcheck"
	// PfxRegSession is used for prefixing registration session keys
	PfxRegSession = "regSession"
	// PfxRegLock is used for prefixing the register single flight lock
	PfxRegLock = "regLock"
	// PfxEns is used for prefixing cached ens reads
	PfxEns = "ensPfx"
	// PfxPriceFeed is used for prefixing cached price feed answers
	PfxPriceFeed = "priceFeed"
)

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey is used to join the redis key by componets
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}

// GetPrefix extracts the prefix of a key for metric tags.
// Keys with three or more components keep their first two.
func GetPrefix(key string) string {
	s := strings.Split(key, ":")
	if len(s) > 2 {
		return strings.Join(s[:2], ":")
	} else if len(s) > 1 {
		return s[0]
	}
	return ""
}
