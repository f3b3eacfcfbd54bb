package cache

import "strings"

const (
	GlobalKeyPrefix = "mathdrill"

	ServiceTopic = "topic"
	TypeDetail   = "detail"
	TypeList     = "list"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// TopicKey is the cache key of a single topic
func TopicKey(id string) string {
	return GenerateCacheKey(ServiceTopic, TypeDetail, id)
}

// TopicListKey is the cache key of the ordered topic list
func TopicListKey() string {
	return GenerateCacheKey(ServiceTopic, TypeList, "all")
}
