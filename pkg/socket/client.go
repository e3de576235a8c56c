// SPDX-License-Identifier: GPL-3.0-or-later

package socket

import (
	"bufio"
	"bytes"
	"crypto/tls"
	"errors"
	"net"
	"time"
)

// New returns a new pointer to a socket client given its configuration.
// The address scheme selects the network (tcp, udp, unix), both IPv4 and
// IPv6 addresses are supported.
func New(cfg Config) *Socket {
	return &Socket{Config: cfg}
}

// Socket is the implementation of a socket client.
type Socket struct {
	Config
	conn net.Conn
}

// Connect connects to the socket address on the named network.
// If the address is a domain name it will also perform the DNS resolution.
// The connect timeout and TLS config from the Socket config are applied.
func (s *Socket) Connect() error {
	network, address := parseAddress(s.Address)

	var conn net.Conn
	var err error

	if s.TLSConf == nil {
		conn, err = net.DialTimeout(network, address, s.ConnectTimeout)
	} else {
		d := net.Dialer{Timeout: s.ConnectTimeout}
		conn, err = tls.DialWithDialer(&d, network, address, s.TLSConf)
	}
	if err != nil {
		return err
	}

	s.conn = conn

	return nil
}

// Disconnect closes the connection.
// Any in-flight commands will be cancelled and return errors.
func (s *Socket) Disconnect() (err error) {
	if s.conn != nil {
		err = s.conn.Close()
		s.conn = nil
	}
	return err
}

// Command writes the command string to the connection and passes the
// response bytes line by line to the process function. The write deadline
// is taken from the write timeout and a single read deadline, taken from
// the read timeout, covers the whole response: repeated line reads do not
// extend it.
func (s *Socket) Command(command string, process Processor) error {
	if s.conn == nil {
		return errors.New("cannot send command on nil connection")
	}

	if err := s.write(command); err != nil {
		return err
	}

	return s.read(process)
}

func (s *Socket) write(command string) error {
	if s.conn == nil {
		return errors.New("attempt to write on nil connection")
	}

	if err := setDeadline(s.conn.SetWriteDeadline, s.WriteTimeout); err != nil {
		return err
	}

	_, err := s.conn.Write([]byte(command))

	return err
}

func (s *Socket) read(process Processor) error {
	if process == nil {
		return errors.New("process func is nil")
	}

	if s.conn == nil {
		return errors.New("attempt to read on nil connection")
	}

	if err := setDeadline(s.conn.SetReadDeadline, s.ReadTimeout); err != nil {
		return err
	}

	sc := bufio.NewScanner(s.conn)
	sc.Split(scanLines)

	for sc.Scan() && process(sc.Bytes()) {
	}

	return sc.Err()
}

// scanLines is bufio.ScanLines without carriage return stripping. Lines
// are delivered to the processor exactly as sent, minus the line feed;
// protocols that use \r\n line endings decide themselves what to do with
// the \r.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

func setDeadline(set func(time.Time) error, timeout time.Duration) error {
	if timeout == 0 {
		return set(time.Time{})
	}
	return set(time.Now().Add(timeout))
}
