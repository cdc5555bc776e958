package config

import "time"

// JoinThrottleConfig limits failed credential verifications per
// identity.  After MaxFailures failures inside Window the identity is
// refused with a rate-limited error until the window expires.
type JoinThrottleConfig struct {
	Enabled     bool
	MaxFailures int
	Window      time.Duration
	Prefix      string
}

func LoadJoinThrottleConfig() JoinThrottleConfig {
	c := JoinThrottleConfig{
		Enabled:     envBool("JOIN_THROTTLE_ENABLED", true),
		MaxFailures: envInt("JOIN_THROTTLE_MAX_FAILURES", 5),
		Window:      envDur("JOIN_THROTTLE_WINDOW", 15*time.Minute),
		Prefix:      envStr("JOIN_THROTTLE_PREFIX", "join"),
	}
	if c.MaxFailures < 1 {
		c.MaxFailures = 1
	}
	return c
}
