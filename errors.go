// SPDX-License-Identifier: GPL-3.0-or-later

package openvpnmgmt

import (
	"errors"
	"fmt"
)

// ErrMissingURLInput is returned by New when the configured address is
// empty or resolves to zero network endpoints. A resolver I/O failure is
// a TransportError instead.
var ErrMissingURLInput = errors.New("management address resolves to no endpoints")

// TransportError wraps a connection, read or write failure, including
// deadline expiry.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("openvpn management %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeIntError reports a field that was expected to hold a base-10
// integer but did not.
type DecodeIntError struct {
	Value string
	Err   error
}

func (e *DecodeIntError) Error() string {
	return fmt.Sprintf("could not decode '%s' as an integer: %v", e.Value, e.Err)
}

func (e *DecodeIntError) Unwrap() error { return e.Err }

// DecodeFloatError reports a field that was expected to hold a base-10
// real number but did not.
type DecodeFloatError struct {
	Value string
	Err   error
}

func (e *DecodeFloatError) Error() string {
	return fmt.Sprintf("could not decode '%s' as a float: %v", e.Value, e.Err)
}

func (e *DecodeFloatError) Unwrap() error { return e.Err }

// MalformedResponseError reports a response the parser could not accept.
// Response carries the offending text verbatim: the single data line when
// a line had too few fields, the whole response body when a mandatory
// section was missing.
type MalformedResponseError struct {
	Response string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("could not parse '%s' response from openvpn server", e.Response)
}
