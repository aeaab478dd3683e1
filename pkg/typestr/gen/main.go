// Command gen writes bytes.go, the 256 byte marker type declarations.
package main

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
)

func main() {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by gen; DO NOT EDIT.\n\n")
	buf.WriteString("package typestr\n")
	for i := 0; i < 256; i++ {
		buf.WriteString("\n")
		if i >= 0x20 && i < 0x7f {
			fmt.Fprintf(&buf, "// B%d is the byte marker for %s.\n", i, strconv.QuoteRune(rune(i)))
		} else {
			fmt.Fprintf(&buf, "// B%d is the byte marker for 0x%02x.\n", i, i)
		}
		fmt.Fprintf(&buf, "type B%d struct{}\n\n", i)
		fmt.Fprintf(&buf, "func (B%d) byteValue() byte { return %d }\n", i, i)
	}
	if err := os.WriteFile("bytes.go", buf.Bytes(), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
