// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	openvpnmgmt "github.com/ovpn-tools/openvpn-mgmt"
	"github.com/ovpn-tools/openvpn-mgmt/logger"
	"github.com/ovpn-tools/openvpn-mgmt/pkg/buildinfo"
	"github.com/ovpn-tools/openvpn-mgmt/pkg/cli"
)

func main() {
	opts := parseCLI()

	if opts.Version {
		fmt.Printf("ovpnstatus, version: %s\n", buildinfo.Version)
		return
	}

	if opts.Debug {
		logger.Level.Set(slog.LevelDebug)
	}

	log := logger.New().With("component", "ovpnstatus")

	cfg, err := loadConfig(opts)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	log.Debugf("using address: %s, connect timeout: %s, read timeout: %s",
		cfg.Address, cfg.ConnectTimeout, cfg.ReadTimeout)

	mgr, err := openvpnmgmt.New(cfg)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	status, err := mgr.GetStatus()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	if err := printStatus(os.Stdout, status, opts.JSON); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func parseCLI() *cli.Option {
	opts, err := cli.Parse(os.Args)
	if err != nil {
		if cli.IsHelp(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}
	return opts
}

func printStatus(w io.Writer, status *openvpnmgmt.Status, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(status)
	}

	fmt.Fprintf(w, "%s (at %s)\n", status.Title, status.Timestamp.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(w, "%d connected client(s)\n", len(status.Clients))
	for _, c := range status.Clients {
		fmt.Fprintf(w, "  %s\t%s\tsince %s\trx %.0f B\ttx %.0f B\n",
			c.CommonName, c.RealAddress, c.ConnectedSince.Format("2006-01-02 15:04:05 MST"),
			c.BytesReceived, c.BytesSent)
	}
	return nil
}
