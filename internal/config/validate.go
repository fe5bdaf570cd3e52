package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate checks that all required fields are set and values are valid.
func (c *ClientConfig) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	if _, err := url.Parse(c.API.BaseURL); err != nil {
		return fmt.Errorf("api.base_url is not a valid URL: %w", err)
	}
	if c.API.MaxRetries < 0 {
		return errors.New("api.max_retries must be >= 0")
	}

	if c.Live.PollInterval <= 0 {
		return errors.New("live.poll_interval must be > 0")
	}
	if c.Live.ClockInterval <= 0 {
		return errors.New("live.clock_interval must be > 0")
	}
	if c.Live.FetchTimeout <= 0 {
		return errors.New("live.fetch_timeout must be > 0")
	}

	if c.Stream.Enabled {
		if c.Stream.URL == "" {
			return errors.New("stream.url is required when stream.enabled is set")
		}
		if c.Stream.ReconnectBaseDelay > c.Stream.ReconnectMaxDelay {
			return fmt.Errorf("stream.reconnect_base_delay (%s) cannot exceed reconnect_max_delay (%s)",
				c.Stream.ReconnectBaseDelay, c.Stream.ReconnectMaxDelay)
		}
	}

	return nil
}
