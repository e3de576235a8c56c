// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"

	openvpnmgmt "github.com/ovpn-tools/openvpn-mgmt"
	"github.com/ovpn-tools/openvpn-mgmt/pkg/cli"
	"github.com/ovpn-tools/openvpn-mgmt/pkg/confopt"
)

const (
	defaultAddress        = "127.0.0.1:7505"
	defaultConnectTimeout = 2 * time.Second
	defaultReadTimeout    = time.Second
)

// loadConfig builds the client configuration from the optional YAML file
// and the command line. Flags changed from their defaults take precedence
// over file values.
func loadConfig(opts *cli.Option) (openvpnmgmt.Config, error) {
	cfg := openvpnmgmt.Config{
		Address:        defaultAddress,
		ConnectTimeout: confopt.Duration(defaultConnectTimeout),
		ReadTimeout:    confopt.Duration(defaultReadTimeout),
	}

	if opts.ConfigFile != "" {
		bs, err := os.ReadFile(opts.ConfigFile)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(bs, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file '%s': %w", opts.ConfigFile, err)
		}
	}

	if opts.Address != defaultAddress {
		cfg.Address = opts.Address
	}
	if cfg.Address == "" {
		cfg.Address = defaultAddress
	}
	if opts.ConnectTimeout != defaultConnectTimeout {
		cfg.ConnectTimeout = confopt.Duration(opts.ConnectTimeout)
	}
	if opts.ReadTimeout != defaultReadTimeout {
		cfg.ReadTimeout = confopt.Duration(opts.ReadTimeout)
	}

	return cfg, nil
}
