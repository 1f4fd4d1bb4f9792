//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package report

import (
	"fmt"
	"io"

	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/text/superscript"
)

var registers = []string{"a", "b", "c", "d", "e", "f", "g", "h"}

// PrintRounds prints the working registers of each compression round
// of the block'th message block, followed by the resulting hash
// value.
func PrintRounds(w io.Writer, block int, rounds [][8]uint32, result [8]uint32) {
	fmt.Fprintf(w, "M%s\n", superscript.Itoa(block+1))

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("t").SetAlign(tabulate.MR)
	for _, r := range registers {
		tab.Header(r).SetAlign(tabulate.MR)
	}
	for t, regs := range rounds {
		row := tab.Row()
		row.Column(fmt.Sprintf("%d", t))
		for _, v := range regs {
			row.Column(fmt.Sprintf("%08x", v))
		}
	}
	tab.Print(w)

	fmt.Fprintf(w, "H%s =", superscript.Itoa(block+1))
	for _, v := range result {
		fmt.Fprintf(w, " %08x", v)
	}
	fmt.Fprintln(w)
}
