// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Command ieee754 shows how IEEE 754 single-precision numbers are encoded.
//
// Without mode flags it analyzes 3.14159 as a quick example
// and then runs an interactive menu on stdin.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/avdva/ieee754"
	"github.com/avdva/ieee754/report"
)

var (
	floatValue  = flag.String("float", "", "Decimal number to analyze, e.g. 3.14159, -0, inf.")
	binValue    = flag.String("bin", "", "32-bit binary pattern to decode.")
	hexValue    = flag.String("hex", "", "Hexadecimal pattern to decode, e.g. 0x40490FDB.")
	special     = flag.Bool("special", false, "Show the special IEEE 754 values.")
	examples    = flag.Bool("examples", false, "Show common examples.")
	quick       = flag.Bool("quick", false, "Analyze 3.14159 as a quick example.")
	interactive = flag.Bool("interactive", false, "Run the interactive menu. This is the default if no other mode is given.")
	jsonOutput  = flag.Bool("json", false, "Print breakdowns as JSON.")
)

const quickExample = 3.14159

type options struct {
	float, bin, hex string
	special         bool
	examples        bool
	quick           bool
	interactive     bool
	json            bool
}

func (o options) oneShot() bool {
	return o.float != "" || o.bin != "" || o.hex != "" || o.special || o.examples || o.quick
}

func main() {
	flag.Parse()
	opts := options{
		float:       *floatValue,
		bin:         *binValue,
		hex:         *hexValue,
		special:     *special,
		examples:    *examples,
		quick:       *quick,
		interactive: *interactive,
		json:        *jsonOutput,
	}
	if err := run(context.Background(), opts, os.Stdin, os.Stdout); err != nil {
		glog.Exitf("got fatal error: %v", err)
	}
}

func run(ctx context.Context, opts options, in io.Reader, out io.Writer) error {
	p := &printer{out: out, json: opts.json}
	if opts.quick {
		if err := p.quick(ieee754.FromFloat64(quickExample)); err != nil {
			return err
		}
	}
	if opts.float != "" {
		b, err := parseDecimal(opts.float)
		if err != nil {
			return errors.Wrapf(err, "invalid -float value %q", opts.float)
		}
		if err := p.breakdown(b); err != nil {
			return err
		}
	}
	if opts.bin != "" {
		b, err := ieee754.ParseBinary(strings.TrimSpace(opts.bin))
		if err != nil {
			return errors.Wrapf(err, "invalid -bin value %q", opts.bin)
		}
		if err := p.breakdown(b); err != nil {
			return err
		}
	}
	if opts.hex != "" {
		b, err := ieee754.ParseHex(strings.TrimSpace(opts.hex))
		if err != nil {
			return errors.Wrapf(err, "invalid -hex value %q", opts.hex)
		}
		if err := p.breakdown(b); err != nil {
			return err
		}
	}
	if opts.special {
		if err := report.WriteSpecialValues(out); err != nil {
			return err
		}
	}
	if opts.examples {
		if err := report.WriteCommonExamples(out); err != nil {
			return err
		}
	}
	if !opts.interactive && opts.oneShot() {
		return nil
	}
	m := newMenu(in, out, p)
	if !opts.quick {
		if err := m.intro(ieee754.FromFloat64(quickExample)); err != nil {
			return ignoreEOF(err)
		}
	}
	return m.run(ctx)
}

// parseDecimal parses anything strconv.ParseFloat accepts, inf and nan included,
// and rounds the result to single precision.
func parseDecimal(s string) (ieee754.Bits, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	return ieee754.FromFloat64(f), nil
}

type printer struct {
	out  io.Writer
	json bool
}

func (p *printer) breakdown(b ieee754.Bits) error {
	bd := report.Analyze(b)
	glog.V(1).Infof("analyzing %s (%s)", bd.Hex, bd.ClassName)
	if p.json {
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		return enc.Encode(bd)
	}
	return report.Write(p.out, bd)
}

func (p *printer) quick(b ieee754.Bits) error {
	if p.json {
		return p.breakdown(b)
	}
	return report.WriteQuick(p.out, b)
}
