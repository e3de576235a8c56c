// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"errors"
	"time"

	"github.com/jessevdk/go-flags"
)

// Option is the command line arguments of the ovpnstatus binary.
type Option struct {
	Address        string        `short:"a" long:"address" description:"management interface address (tcp://, udp:// or unix://)" default:"127.0.0.1:7505"`
	ConfigFile     string        `short:"c" long:"config" description:"path to a YAML configuration file"`
	ConnectTimeout time.Duration `long:"connect-timeout" description:"connection timeout, zero means no limit" default:"2s"`
	ReadTimeout    time.Duration `long:"read-timeout" description:"response read timeout, zero means no limit" default:"1s"`
	JSON           bool          `short:"j" long:"json" description:"print the snapshot as JSON"`
	Debug          bool          `short:"d" long:"debug" description:"enable debug logging"`
	Version        bool          `short:"V" long:"version" description:"print version and exit"`
}

// Parse parses the full argument list, program name included.
func Parse(args []string) (*Option, error) {
	opt := &Option{}
	parser := flags.NewParser(opt, flags.Default)
	parser.Name = "ovpnstatus"
	parser.Usage = "[OPTIONS]"

	if _, err := parser.ParseArgs(args[1:]); err != nil {
		return nil, err
	}

	return opt, nil
}

// IsHelp reports whether the parse error is the built-in help request.
func IsHelp(err error) bool {
	var flagsErr *flags.Error
	return errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp
}
