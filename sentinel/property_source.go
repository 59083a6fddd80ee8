package sentinel

// Property keys recognized by NewConfigFromPropertySource. The names follow
// the spring-data convention so existing property files keep working.
const (
	MasterProperty   = "spring.redis.sentinel.master"
	NodesProperty    = "spring.redis.sentinel.nodes"
	PasswordProperty = "spring.redis.sentinel.password"
)

// PropertySource is a generic key based lookup a Config can be built from,
// so the caller decides where the values come from.
type PropertySource interface {
	GetProperty(key string) (string, bool)
}

// MapPropertySource is a PropertySource backed by a plain map.
type MapPropertySource map[string]string

// GetProperty satisfies PropertySource.
func (s MapPropertySource) GetProperty(key string) (string, bool) {
	value, ok := s[key]
	return value, ok
}
