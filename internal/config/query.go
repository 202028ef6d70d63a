package config

import (
	"net/url"
	"strconv"
	"strings"
)

// Query parameter names accepted by the HTTP API.
const (
	ParamFTP         = "ftp"
	ParamWeight      = "kg"
	ParamFormat      = "type"
	ParamMinDuration = "minduration"
)

// WithQuery returns an Option that applies URL query parameters on top of
// the current settings.
func WithQuery(q url.Values) Option {
	return func(c *Config) error {
		if s := q.Get(ParamFTP); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				return ErrInvalidParam.Fmt(s, ParamFTP)
			}

			c.FTP = n
		}

		if s := q.Get(ParamWeight); s != "" {
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return ErrInvalidParam.Fmt(s, ParamWeight)
			}

			c.Weight = f
		}

		if s := q.Get(ParamFormat); s != "" {
			c.Format = strings.ToLower(s)
		}

		if s := q.Get(ParamMinDuration); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				return ErrInvalidParam.Fmt(s, ParamMinDuration)
			}

			c.MinDuration = n
		}

		return nil
	}
}
