// SPDX-License-Identifier: GPL-3.0-or-later

// Package openvpnmgmt is a client for the OpenVPN management interface
// "status" command. It connects to the management socket, issues the
// command and parses the response into a point-in-time snapshot of the
// connected clients.
package openvpnmgmt

import "time"

// Client holds the parsed state of one connected VPN peer at snapshot
// time. Entries whose common name is "UNDEF" (sessions that have not
// authenticated yet) never appear in a Status.
type Client struct {
	CommonName     string    `yaml:"common_name" json:"common_name"`
	RealAddress    string    `yaml:"real_address" json:"real_address"`
	ConnectedSince time.Time `yaml:"connected_since" json:"connected_since"`
	BytesReceived  float64   `yaml:"bytes_received" json:"bytes_received"`
	BytesSent      float64   `yaml:"bytes_sent" json:"bytes_sent"`
}

// Status is one snapshot of the server's client table. Clients keep the
// order of appearance in the response, duplicates included. A Status is
// only produced from a response that carried a title, a timestamp and
// the client list header; the client list itself may be empty.
type Status struct {
	Title     string    `yaml:"title" json:"title"`
	Timestamp time.Time `yaml:"timestamp" json:"timestamp"`
	Clients   []Client  `yaml:"clients" json:"clients"`
}
