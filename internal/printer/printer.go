// Package printer renders remappings for the terminal.
// Flat output lists one remapping per line in configuration order; pretty
// output groups remappings by context under a header per group.
package printer

import (
	"fmt"
	"io"
	"sort"

	"remappings/internal/errors"
	"remappings/internal/remapping"
)

// Printer writes remappings to a single output stream.
// It holds no state between calls to Print.
type Printer struct {
	writer io.Writer
	pretty bool
}

// New creates a Printer writing to w, grouped by context when pretty is set.
func New(w io.Writer, pretty bool) *Printer {
	return &Printer{
		writer: w,
		pretty: pretty,
	}
}

// Group is the set of remappings sharing one context, in input order.
// An empty Context is the global group.
type Group struct {
	Context    string
	Remappings []remapping.Remapping
}

// Header returns the line introducing the group in pretty output.
func (g Group) Header() string {
	if g.Context == "" {
		return "Global:"
	}
	return "Context: " + g.Context
}

// Print writes remappings in the configured format. The first failed write
// aborts printing and is returned as an output error.
func (p *Printer) Print(remappings []remapping.Remapping) error {
	ew := &errWriter{w: p.writer}

	if p.pretty {
		p.writePretty(ew, remappings)
	} else {
		p.writeFlat(ew, remappings)
	}

	if ew.err != nil {
		return errors.NewOutputError(ew.err)
	}
	return nil
}

func (p *Printer) writeFlat(ew *errWriter, remappings []remapping.Remapping) {
	for _, r := range remappings {
		ew.println(r.String())
	}
}

func (p *Printer) writePretty(ew *errWriter, remappings []remapping.Remapping) {
	for _, group := range GroupByContext(remappings) {
		ew.println(group.Header())
		for _, r := range group.Remappings {
			// the header already names the context
			ew.println("- " + r.WithoutContext().String())
		}
		ew.println("")
	}
}

// GroupByContext partitions remappings by context. Groups are ordered with
// the global group first, then by context in ascending byte order; within a
// group the input order is kept. Every remapping lands in exactly one group.
func GroupByContext(remappings []remapping.Remapping) []Group {
	index := make(map[string]int)
	var groups []Group

	for _, r := range remappings {
		i, ok := index[r.Context]
		if !ok {
			i = len(groups)
			index[r.Context] = i
			groups = append(groups, Group{Context: r.Context})
		}
		groups[i].Remappings = append(groups[i].Remappings, r)
	}

	// "" sorts before every non-empty string, which puts Global first.
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Context < groups[j].Context
	})

	return groups
}

// errWriter remembers the first write error and turns later writes into no-ops.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) println(line string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, line)
}
