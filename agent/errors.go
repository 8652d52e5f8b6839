package agent

import "fmt"

// ConfigError reports an invalid construction argument: an unrecognized
// role, or a name containing any of `[](): ;`.
type ConfigError struct {
	Field string
	Value string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("agent: invalid %s: %q", e.Field, e.Value)
}
