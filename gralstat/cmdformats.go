// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/aclements/go-gral/dataio"
)

func init() {
	registerSubcommand("formats", "list the supported file formats", cmdFormats)
}

func cmdFormats(e *env, args []string) error {
	fs := e.newFlagSet("formats", "")
	if err := parse(fs, args, 0); err != nil {
		return err
	}

	type entry struct {
		caps        dataio.Capabilities
		read, write bool
	}
	byMime := make(map[string]*entry)
	for _, c := range dataio.Readers.AllCapabilities() {
		byMime[c.MimeType] = &entry{caps: c, read: true}
	}
	for _, c := range dataio.Writers.AllCapabilities() {
		if ent := byMime[c.MimeType]; ent != nil {
			ent.write = true
		} else {
			byMime[c.MimeType] = &entry{caps: c, write: true}
		}
	}
	var mimes []string
	for m := range byMime {
		mimes = append(mimes, m)
	}
	sort.Strings(mimes)

	tw := tabwriter.NewWriter(e.stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "FORMAT\tMIME TYPE\tMODE\tEXTENSIONS\tDESCRIPTION\n")
	for _, m := range mimes {
		ent := byMime[m]
		mode := ""
		if ent.read {
			mode += "r"
		}
		if ent.write {
			mode += "w"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", ent.caps.Format, m, mode, strings.Join(ent.caps.Extensions, ","), ent.caps.Name)
	}
	return tw.Flush()
}
