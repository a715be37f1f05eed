package keys

import (
	"crypto/md5"
	"fmt"
	"strings"
)

const (
	// PfxHealthCheck is used for prefixing health check redis key
	PfxHealthCheck = "healthcheck"
	// PfxFloorPrice is used for prefixing cached floor prices
	PfxFloorPrice = "floorPrice"
	// PfxPriceHistory is used for prefixing cached history series
	PfxPriceHistory = "priceHistory"
	// PfxListings is used for prefixing cached listing pages
	PfxListings = "listings"
)

// MD5 hashes the data with md5
func MD5(data string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(data)))
}

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey is used to join the redis key by componets
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}
