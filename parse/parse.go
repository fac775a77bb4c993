// SPDX-License-Identifier: MIT

package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/valvenet/core"
)

// Sentinel errors for malformed input.
var (
	// ErrEmptyInput is returned when the input has no valve lines.
	ErrEmptyInput = errors.New("parse: no valves in input")

	// ErrMalformedLine is returned when a line does not match the grammar.
	ErrMalformedLine = errors.New("parse: malformed valve line")

	// ErrBadFlowRate is returned when a flow rate is not a non-negative integer.
	ErrBadFlowRate = errors.New("parse: invalid flow rate")

	// ErrUnknownTunnel is returned when a tunnel names an undeclared valve.
	ErrUnknownTunnel = errors.New("parse: tunnel to unknown valve")
)

// maxLine bounds a single input line.
const maxLine = 1 << 20

var lineRx = regexp.MustCompile(`^Valve (\S+) has flow rate=([^;]*); tunnels? leads? to valves? (.+)$`)

// record is one decoded line before tunnels are resolved.
type record struct {
	line    int
	text    string
	label   string
	flow    int
	tunnels []string
}

func lineErrorf(rec record, err error) error {
	return fmt.Errorf("line %d %q: %w", rec.line, rec.text, err)
}

// Read decodes every valve line from r into a new Network.
func Read(r io.Reader) (*core.Network, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLine)

	var recs []record
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		rec, err := decodeLine(line, text)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parse: read: %w", err)
	}
	if len(recs) == 0 {
		return nil, ErrEmptyInput
	}

	net := core.NewNetwork()
	for _, rec := range recs {
		if _, err := net.AddValve(rec.label, rec.flow); err != nil {
			return nil, lineErrorf(rec, err)
		}
	}
	for _, rec := range recs {
		from, _ := net.Lookup(rec.label)
		for _, label := range rec.tunnels {
			to, ok := net.Lookup(label)
			if !ok {
				return nil, lineErrorf(rec, fmt.Errorf("%w: %q", ErrUnknownTunnel, label))
			}
			if err := net.Connect(from, to); err != nil {
				return nil, lineErrorf(rec, err)
			}
		}
	}

	return net, nil
}

// decodeLine matches one non-blank line against the grammar.
func decodeLine(line int, text string) (record, error) {
	rec := record{line: line, text: text}

	m := lineRx.FindStringSubmatch(text)
	if m == nil {
		return rec, lineErrorf(rec, ErrMalformedLine)
	}
	rec.label = m[1]

	flow, err := strconv.Atoi(strings.TrimSpace(m[2]))
	if err != nil || flow < 0 {
		return rec, lineErrorf(rec, fmt.Errorf("%w: %q", ErrBadFlowRate, m[2]))
	}
	rec.flow = flow

	for _, part := range strings.Split(m[3], ",") {
		label := strings.TrimSpace(part)
		if label == "" {
			return rec, lineErrorf(rec, ErrMalformedLine)
		}
		rec.tunnels = append(rec.tunnels, label)
	}

	return rec, nil
}
