// SPDX-License-Identifier: GPL-3.0-or-later

package openvpnmgmt

import (
	"strconv"
	"strings"
	"time"
)

// Line tags of the status response. Lines are matched on their literal
// prefix, anything unrecognized is skipped.
const (
	tagHeaderClientList = "HEADER\tCLIENT_LIST"
	tagClientList       = "CLIENT_LIST"
	tagTitle            = "TITLE"
	tagTime             = "TIME"

	nameUndef = "UNDEF"
)

// CLIENT_LIST field layout (tab separated, tag included):
// 0: CLIENT_LIST, 1: common name, 2: real address (host:port),
// 3: virtual address, 4: unused, 5: bytes received, 6: bytes sent,
// 7: connected since (date string), 8: connected since (unix epoch).
const (
	fieldsMinClientList = 9
	fieldsMinTitle      = 2
	fieldsMinTime       = 3
)

// parseStatus turns a complete response body into a Status. The body is
// split on line feeds; carriage returns stay attached to the line and are
// trimmed per field, so malformed line errors carry the raw line verbatim.
func parseStatus(resp string) (*Status, error) {
	var (
		clients              []Client
		title                string
		timestamp            time.Time
		haveHeader, haveTime bool
		haveTitle            bool
	)

	for _, line := range strings.Split(resp, "\n") {
		switch {
		case strings.HasPrefix(line, tagHeaderClientList):
			haveHeader = true
		case strings.HasPrefix(line, tagClientList):
			client, err := parseClient(line)
			if err != nil {
				return nil, err
			}
			if client.CommonName != nameUndef {
				clients = append(clients, client)
			}
		case strings.HasPrefix(line, tagTitle):
			fields, err := splitFields(line, fieldsMinTitle)
			if err != nil {
				return nil, err
			}
			title = trimCR(fields[1])
			haveTitle = true
		case strings.HasPrefix(line, tagTime):
			fields, err := splitFields(line, fieldsMinTime)
			if err != nil {
				return nil, err
			}
			epoch, err := parseInt(trimCR(fields[2]))
			if err != nil {
				return nil, err
			}
			timestamp = time.Unix(epoch, 0).UTC()
			haveTime = true
		}
	}

	if !haveHeader || !haveTitle || !haveTime {
		return nil, &MalformedResponseError{Response: resp}
	}

	return &Status{Title: title, Timestamp: timestamp, Clients: clients}, nil
}

func parseClient(line string) (Client, error) {
	fields, err := splitFields(line, fieldsMinClientList)
	if err != nil {
		return Client{}, err
	}

	// The port suffix of the real address is dropped, the address itself
	// is kept verbatim.
	address, _, _ := strings.Cut(trimCR(fields[2]), ":")

	since, err := parseInt(trimCR(fields[8]))
	if err != nil {
		return Client{}, err
	}
	bytesReceived, err := parseFloat(trimCR(fields[5]))
	if err != nil {
		return Client{}, err
	}
	bytesSent, err := parseFloat(trimCR(fields[6]))
	if err != nil {
		return Client{}, err
	}

	return Client{
		CommonName:     trimCR(fields[1]),
		RealAddress:    address,
		ConnectedSince: time.Unix(since, 0).UTC(),
		BytesReceived:  bytesReceived,
		BytesSent:      bytesSent,
	}, nil
}

// splitFields splits a line on tabs and checks the minimum arity for its
// record type. The error payload is the raw line, carriage return
// included.
func splitFields(line string, minFields int) ([]string, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < minFields {
		return nil, &MalformedResponseError{Response: line}
	}
	return fields, nil
}

func parseInt(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &DecodeIntError{Value: s, Err: err}
	}
	return v, nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &DecodeFloatError{Value: s, Err: err}
	}
	return v, nil
}

func trimCR(s string) string {
	return strings.TrimSuffix(s, "\r")
}
