package instance

import (
	"os"

	"github.com/angelmondragon/shopfront/pkg/env"
)

// GetID identifies the running process in logs: SHOPFRONT_INSTANCE_ID, then
// the platform's DYNO, then the host name.
func GetID() string {
	if id := env.First("", "SHOPFRONT_INSTANCE_ID", "DYNO"); id != "" {
		return id
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return "local"
}
