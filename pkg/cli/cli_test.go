// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := map[string]struct {
		args    []string
		want    Option
		wantErr bool
	}{
		"defaults": {
			args: []string{"ovpnstatus"},
			want: Option{
				Address:        "127.0.0.1:7505",
				ConnectTimeout: 2 * time.Second,
				ReadTimeout:    time.Second,
			},
		},
		"address and json": {
			args: []string{"ovpnstatus", "-a", "10.0.0.1:7505", "--json"},
			want: Option{
				Address:        "10.0.0.1:7505",
				ConnectTimeout: 2 * time.Second,
				ReadTimeout:    time.Second,
				JSON:           true,
			},
		},
		"timeouts": {
			args: []string{"ovpnstatus", "--connect-timeout", "500ms", "--read-timeout", "3s"},
			want: Option{
				Address:        "127.0.0.1:7505",
				ConnectTimeout: 500 * time.Millisecond,
				ReadTimeout:    3 * time.Second,
			},
		},
		"unknown flag": {
			args:    []string{"ovpnstatus", "--no-such-flag"},
			wantErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			opt, err := Parse(test.args)

			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, *opt)
		})
	}
}
