package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBaseURL            = "http://localhost:8000"
	DefaultAPITimeout         = 30 * time.Second
	DefaultMaxRetries         = 3
	DefaultPollInterval       = 1 * time.Second
	DefaultClockInterval      = 1 * time.Second
	DefaultFetchTimeout       = 5 * time.Second
	DefaultHandshakeTimeout   = 10 * time.Second
	DefaultReadTimeout        = 30 * time.Second
	DefaultReconnectBaseDelay = 1 * time.Second
	DefaultReconnectMaxDelay  = 60 * time.Second
	DefaultSoundAsset         = "assets/hour.mp3"
)

func (c *ClientConfig) applyDefaults() {
	// API defaults
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = Duration(DefaultAPITimeout)
	}
	if c.API.MaxRetries == 0 {
		c.API.MaxRetries = DefaultMaxRetries
	}

	// Live view defaults
	if c.Live.PollInterval == 0 {
		c.Live.PollInterval = Duration(DefaultPollInterval)
	}
	if c.Live.ClockInterval == 0 {
		c.Live.ClockInterval = Duration(DefaultClockInterval)
	}
	if c.Live.FetchTimeout == 0 {
		c.Live.FetchTimeout = Duration(DefaultFetchTimeout)
	}

	// Stream defaults
	if c.Stream.HandshakeTimeout == 0 {
		c.Stream.HandshakeTimeout = Duration(DefaultHandshakeTimeout)
	}
	if c.Stream.ReadTimeout == 0 {
		c.Stream.ReadTimeout = Duration(DefaultReadTimeout)
	}
	if c.Stream.ReconnectBaseDelay == 0 {
		c.Stream.ReconnectBaseDelay = Duration(DefaultReconnectBaseDelay)
	}
	if c.Stream.ReconnectMaxDelay == 0 {
		c.Stream.ReconnectMaxDelay = Duration(DefaultReconnectMaxDelay)
	}

	// Sound defaults
	if c.Sound.Asset == "" {
		c.Sound.Asset = DefaultSoundAsset
	}
}
