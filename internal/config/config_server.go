package config

import "fmt"

// FixtureServerConfig is the configuration view of the fixture server.
type FixtureServerConfig struct {
	// HTTPAddress is the listen address in "host:port" form.
	HTTPAddress string
	// Users is the size of the generated user directory.
	Users int
	// BrokenEvery makes every n-th user lack "authentication.email".
	BrokenEvery int
}

// GetFixtureServerConfig builds and validates the fixture server config view
// from the merged structured configuration.
func GetFixtureServerConfig(args []string) (*FixtureServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &FixtureServerConfig{
		HTTPAddress: cfg.Server.HTTPAddress,
		Users:       cfg.Server.FixtureUsers,
		BrokenEvery: cfg.Server.FixtureBrokenEvery,
	}

	return serverCfg, serverCfg.validate()
}
