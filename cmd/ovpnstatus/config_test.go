// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovpn-tools/openvpn-mgmt/pkg/cli"
)

func TestLoadConfig(t *testing.T) {
	tests := map[string]struct {
		opts     cli.Option
		file     string
		wantAddr string
		wantConn time.Duration
		wantRead time.Duration
		wantErr  bool
	}{
		"defaults": {
			opts:     cli.Option{Address: defaultAddress, ConnectTimeout: defaultConnectTimeout, ReadTimeout: defaultReadTimeout},
			wantAddr: defaultAddress,
			wantConn: defaultConnectTimeout,
			wantRead: defaultReadTimeout,
		},
		"file values used when flags are defaults": {
			opts:     cli.Option{Address: defaultAddress, ConnectTimeout: defaultConnectTimeout, ReadTimeout: defaultReadTimeout},
			file:     "address: 10.0.0.1:7505\nconnect_timeout: 500ms\nread_timeout: 3\n",
			wantAddr: "10.0.0.1:7505",
			wantConn: 500 * time.Millisecond,
			wantRead: 3 * time.Second,
		},
		"changed flags override the file": {
			opts:     cli.Option{Address: "192.168.1.1:7505", ConnectTimeout: defaultConnectTimeout, ReadTimeout: 5 * time.Second},
			file:     "address: 10.0.0.1:7505\nread_timeout: 3\n",
			wantAddr: "192.168.1.1:7505",
			wantConn: defaultConnectTimeout,
			wantRead: 5 * time.Second,
		},
		"unreadable file": {
			opts:    cli.Option{Address: defaultAddress, ConfigFile: "/no/such/file.yaml"},
			wantErr: true,
		},
		"invalid yaml": {
			opts:    cli.Option{Address: defaultAddress},
			file:    "address: [broken\n",
			wantErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			opts := test.opts
			if test.file != "" {
				path := filepath.Join(t.TempDir(), "ovpnstatus.yaml")
				require.NoError(t, os.WriteFile(path, []byte(test.file), 0o600))
				opts.ConfigFile = path
			}

			cfg, err := loadConfig(&opts)

			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.wantAddr, cfg.Address)
			assert.Equal(t, test.wantConn, cfg.ConnectTimeout.Duration())
			assert.Equal(t, test.wantRead, cfg.ReadTimeout.Duration())
		})
	}
}
