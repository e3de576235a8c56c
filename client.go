// SPDX-License-Identifier: GPL-3.0-or-later

package openvpnmgmt

import (
	"crypto/tls"
	"net"
	"strings"

	"github.com/ovpn-tools/openvpn-mgmt/pkg/confopt"
	"github.com/ovpn-tools/openvpn-mgmt/pkg/socket"
)

const (
	commandStatus = "status\n"

	// respEnding terminates a status response. The read loop keeps
	// consuming lines until it sees a line whose trimmed content ends
	// with this token; the read timeout is the only other bound.
	respEnding = "END"
)

// Config holds the management interface address and the per-operation
// timeouts. The address is a host:port pair, optionally prefixed with a
// tcp://, udp:// or unix:// scheme. Zero timeouts leave the corresponding
// operation unbounded.
type Config struct {
	Address        string           `yaml:"address" json:"address"`
	ConnectTimeout confopt.Duration `yaml:"connect_timeout,omitempty" json:"connect_timeout"`
	ReadTimeout    confopt.Duration `yaml:"read_timeout,omitempty" json:"read_timeout"`
	WriteTimeout   confopt.Duration `yaml:"write_timeout,omitempty" json:"write_timeout"`

	TLSConf *tls.Config `yaml:"-" json:"-"`
}

// CommandManager issues status requests against one management interface
// address. Each request is a fresh connection: connect, write, read to
// the terminator, parse, disconnect. It holds no state across requests
// and provides no internal synchronization; concurrent use requires one
// CommandManager per goroutine.
type CommandManager struct {
	sock socket.Client
}

// New validates the configured address once and returns a ready
// CommandManager. An empty address or one that resolves to zero network
// endpoints yields ErrMissingURLInput; a resolver I/O failure yields a
// TransportError.
func New(cfg Config) (*CommandManager, error) {
	if err := validateAddress(cfg.Address); err != nil {
		return nil, err
	}

	return &CommandManager{
		sock: socket.New(socket.Config{
			Address:        cfg.Address,
			ConnectTimeout: cfg.ConnectTimeout.Duration(),
			ReadTimeout:    cfg.ReadTimeout.Duration(),
			WriteTimeout:   cfg.WriteTimeout.Duration(),
			TLSConf:        cfg.TLSConf,
		}),
	}, nil
}

// GetStatus sends the status command and returns the parsed snapshot.
// Transport and decode failures abort the call immediately, nothing is
// retried; polling callers decide when to try again.
func (m *CommandManager) GetStatus() (*Status, error) {
	if err := m.sock.Connect(); err != nil {
		return nil, &TransportError{Op: "connect", Err: err}
	}
	defer func() { _ = m.sock.Disconnect() }()

	var resp strings.Builder
	first := true

	err := m.sock.Command(commandStatus, func(bs []byte) bool {
		if first {
			first = false
		} else {
			resp.WriteByte('\n')
		}
		resp.Write(bs)
		return !strings.HasSuffix(strings.TrimSpace(string(bs)), respEnding)
	})
	if err != nil {
		return nil, &TransportError{Op: "read", Err: err}
	}

	return parseStatus(resp.String())
}

func validateAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return ErrMissingURLInput
	}
	if socket.IsUnixSocket(address) {
		return nil
	}

	address = strings.TrimPrefix(address, "tcp://")
	address = strings.TrimPrefix(address, "udp://")

	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return &TransportError{Op: "resolve", Err: err}
	}
	if host == "" {
		// :port connects to localhost
		return nil
	}

	addrs, err := net.LookupHost(host)
	if err != nil {
		return &TransportError{Op: "resolve", Err: err}
	}
	if len(addrs) == 0 {
		return ErrMissingURLInput
	}

	return nil
}
