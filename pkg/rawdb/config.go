package rawdb

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// Config is parsed from a storage uri, `memory://` or `file:///path/to/db`.
type Config struct {
	Scheme string
	Path   string
}

func NewConfigFromString(s string) (*Config, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid storage uri %q", s)
	}

	config := &Config{Scheme: strings.ToLower(u.Scheme)}
	switch config.Scheme {
	case "memory":
	case "file":
		config.Path = u.Path
		if len(u.Host) > 0 {
			config.Path = u.Host + u.Path
		}
		if len(config.Path) < 1 {
			return nil, errors.Errorf("empty path in storage uri %q", s)
		}
	default:
		return nil, errors.Errorf("unsupported storage scheme %q", u.Scheme)
	}

	return config, nil
}
