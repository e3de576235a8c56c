// SPDX-License-Identifier: GPL-3.0-or-later

package socket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testTCPServerAddress  = "tcp://127.0.0.1:9389"
	testUDPServerAddress  = "udp://127.0.0.1:9389"
	testUnixServerAddress = "unix:///tmp/testSocketFD"
	testTimeout           = 1000 * time.Millisecond
)

type testServer interface {
	Run() error
	Close() error
}

func TestSocket_Command(t *testing.T) {
	tests := map[string]struct {
		srv            testServer
		cfg            Config
		wantRows       int
		wantConnectErr bool
	}{
		"tcp": {
			srv: newTCPServer(testTCPServerAddress, 1),
			cfg: Config{
				Address:        testTCPServerAddress,
				ConnectTimeout: testTimeout,
				ReadTimeout:    testTimeout,
				WriteTimeout:   testTimeout,
			},
			wantRows: 1,
		},
		"udp": {
			srv: newUDPServer(testUDPServerAddress, 1),
			cfg: Config{
				Address:        testUDPServerAddress,
				ConnectTimeout: testTimeout,
				ReadTimeout:    testTimeout,
				WriteTimeout:   testTimeout,
			},
			wantRows: 1,
		},
		"unix": {
			srv: newUnixServer(testUnixServerAddress, 1),
			cfg: Config{
				Address:        testUnixServerAddress,
				ConnectTimeout: testTimeout,
				ReadTimeout:    testTimeout,
				WriteTimeout:   testTimeout,
			},
			wantRows: 1,
		},
		"no server": {
			cfg: Config{
				Address:        "tcp://127.0.0.1:9390",
				ConnectTimeout: testTimeout,
			},
			wantConnectErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if test.srv != nil {
				go func() { _ = test.srv.Run() }()
				defer func() { _ = test.srv.Close() }()
				time.Sleep(time.Millisecond * 200)
			}

			sock := New(test.cfg)

			err := sock.Connect()
			if test.wantConnectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer func() { _ = sock.Disconnect() }()

			var rows int
			err = sock.Command("ping\n", func(bs []byte) bool {
				assert.Equal(t, "pong", string(bs))
				rows++
				return rows < test.wantRows
			})

			require.NoError(t, err)
			assert.Equal(t, test.wantRows, rows)
		})
	}
}

func TestSocket_CommandStopsWhenProcessorReturnsFalse(t *testing.T) {
	const addr = "tcp://127.0.0.1:9391"

	srv := newTCPServer(addr, 5)
	go func() { _ = srv.Run() }()
	defer func() { _ = srv.Close() }()
	time.Sleep(time.Millisecond * 200)

	sock := New(Config{
		Address:        addr,
		ConnectTimeout: testTimeout,
		ReadTimeout:    testTimeout,
		WriteTimeout:   testTimeout,
	})

	require.NoError(t, sock.Connect())
	defer func() { _ = sock.Disconnect() }()

	var rows int
	err := sock.Command("ping\n", func(bs []byte) bool {
		rows++
		return rows < 2
	})

	require.NoError(t, err)
	assert.Equal(t, 2, rows)
}

func TestSocket_CommandOnNilConnection(t *testing.T) {
	sock := New(Config{Address: testTCPServerAddress})

	err := sock.Command("ping\n", func([]byte) bool { return true })

	assert.Error(t, err)
}

func TestIsUnixSocket(t *testing.T) {
	assert.True(t, IsUnixSocket("unix:///run/openvpn/mgmt.sock"))
	assert.True(t, IsUnixSocket("/run/openvpn/mgmt.sock"))
	assert.False(t, IsUnixSocket("tcp://127.0.0.1:7505"))
	assert.False(t, IsUnixSocket("127.0.0.1:7505"))
}

func TestParseAddress(t *testing.T) {
	tests := map[string]struct {
		address     string
		wantNetwork string
		wantAddress string
	}{
		"bare host:port":  {address: "127.0.0.1:7505", wantNetwork: "tcp", wantAddress: "127.0.0.1:7505"},
		"tcp scheme":      {address: "tcp://127.0.0.1:7505", wantNetwork: "tcp", wantAddress: "127.0.0.1:7505"},
		"udp scheme":      {address: "udp://127.0.0.1:7505", wantNetwork: "udp", wantAddress: "127.0.0.1:7505"},
		"unix scheme":     {address: "unix:///run/mgmt.sock", wantNetwork: "unix", wantAddress: "/run/mgmt.sock"},
		"bare unix path":  {address: "/run/mgmt.sock", wantNetwork: "unix", wantAddress: "/run/mgmt.sock"},
		"domain and port": {address: "localhost:7505", wantNetwork: "tcp", wantAddress: "localhost:7505"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			network, address := parseAddress(test.address)

			assert.Equal(t, test.wantNetwork, network)
			assert.Equal(t, test.wantAddress, address)
		})
	}
}
