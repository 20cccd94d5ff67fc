package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mezonai/wavesgo/errors"
	"github.com/mezonai/wavesgo/logx"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// ProfileByName looks up a profile by name or by its chain character.
func ProfileByName(name string) (Profile, error) {
	for _, p := range Profiles {
		if strings.EqualFold(p.Name, name) || (len(name) == 1 && name[0] == p.ChainID.Byte()) {
			return p, nil
		}
	}
	return Profile{}, errors.Newf(errors.KindUnsupportedOperation, "unknown network profile %q", name)
}

// Load reads a client configuration from a .yml/.yaml or .ini file.
func Load(path string) (*ClientConfig, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return LoadYAML(path)
	case ".ini":
		return LoadINI(path)
	default:
		return nil, errors.Newf(errors.KindIoError, "unsupported config file %s", path)
	}
}

// LoadYAML reads the "client" key of a YAML file.
func LoadYAML(path string) (*ClientConfig, error) {
	logx.Debug("CONFIG", "loading yaml config from ", path)
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.KindIoError, err, "open config")
	}
	defer file.Close()

	var cfgFile ConfigFile
	if err := yaml.NewDecoder(file).Decode(&cfgFile); err != nil {
		return nil, errors.Wrap(errors.KindIoError, err, "decode yaml config")
	}
	return &cfgFile.Client, nil
}

// LoadINI reads the [client] section of an .ini file.
func LoadINI(path string) (*ClientConfig, error) {
	logx.Debug("CONFIG", "loading ini config from ", path)
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, errors.Wrap(errors.KindIoError, err, "load ini config")
	}
	clientCfg := &ClientConfig{}
	if err := cfg.Section("client").MapTo(clientCfg); err != nil {
		return nil, errors.Wrap(errors.KindIoError, err, "map ini config")
	}
	return clientCfg, nil
}

// Resolve applies defaults: testnet profile, the profile's node URL, 60s timeouts and 1s polling.
func (c *ClientConfig) Resolve() (Resolved, error) {
	name := c.Profile
	if name == "" {
		name = Testnet.Name
	}
	profile, err := ProfileByName(name)
	if err != nil {
		return Resolved{}, err
	}
	r := Resolved{
		Profile:              profile,
		NodeURL:              profile.URL,
		Timeout:              DefaultTimeout,
		PollInterval:         DefaultPollInterval,
		WaitTimeout:          DefaultWaitTimeout,
		MaxRequestsPerSecond: c.MaxRequestsPerSecond,
	}
	if c.NodeURL != "" {
		r.NodeURL = strings.TrimRight(c.NodeURL, "/")
	}
	if c.TimeoutSeconds > 0 {
		r.Timeout = seconds(c.TimeoutSeconds)
	}
	if c.PollIntervalMs > 0 {
		r.PollInterval = millis(c.PollIntervalMs)
	}
	if c.WaitTimeoutSeconds > 0 {
		r.WaitTimeout = seconds(c.WaitTimeoutSeconds)
	}
	return r, nil
}
