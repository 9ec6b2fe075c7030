// Copyright 2020 Aleksandr Demakin. All rights reserved.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/avdva/ieee754"
	"github.com/avdva/ieee754/report"
)

const (
	title = "IEEE 754 Single Precision Floating-Point Analyzer"

	menuText = `
Options:
1. Analyze a decimal number
2. Convert binary (32 bits) to float
3. Convert hexadecimal to float
4. Show special values examples
5. Show common examples
0. Exit
`
)

type menu struct {
	scanner *bufio.Scanner
	out     io.Writer
	p       *printer
}

func newMenu(in io.Reader, out io.Writer, p *printer) *menu {
	return &menu{scanner: bufio.NewScanner(in), out: out, p: p}
}

// run serves menu choices until 0 is chosen or the input ends.
func (m *menu) run(ctx context.Context) error {
	if err := report.WriteTitle(m.out, title); err != nil {
		return err
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := io.WriteString(m.out, menuText); err != nil {
			return err
		}
		choice, err := m.prompt("\nEnter choice: ")
		if err != nil {
			return ignoreEOF(err)
		}
		glog.V(1).Infof("menu choice %q", choice)
		switch choice {
		case "1":
			err = m.analyzeDecimal()
		case "2":
			err = m.decode("Enter 32-bit binary: ", ieee754.ParseBinary)
		case "3":
			err = m.decode("Enter hexadecimal (e.g., 0x40490FDB): ", ieee754.ParseHex)
		case "4":
			err = report.WriteSpecialValues(m.out)
		case "5":
			err = report.WriteCommonExamples(m.out)
		case "0":
			_, err = io.WriteString(m.out, "\nGoodbye!\n")
			return err
		default:
			_, err = io.WriteString(m.out, "Invalid choice. Please try again.\n")
		}
		if err != nil {
			return ignoreEOF(err)
		}
	}
}

// intro shows the quick example and waits for Enter.
func (m *menu) intro(b ieee754.Bits) error {
	if err := m.p.quick(b); err != nil {
		return err
	}
	_, err := m.prompt("\nPress Enter to continue to interactive menu...")
	return err
}

func (m *menu) prompt(text string) (string, error) {
	if _, err := io.WriteString(m.out, text); err != nil {
		return "", err
	}
	if !m.scanner.Scan() {
		if err := m.scanner.Err(); err != nil {
			return "", errors.Wrap(err, "reading input")
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.scanner.Text()), nil
}

func (m *menu) analyzeDecimal() error {
	text, err := m.prompt("Enter decimal number: ")
	if err != nil {
		return err
	}
	b, err := parseDecimal(text)
	if err != nil {
		glog.Warningf("rejected decimal input %q: %v", text, err)
		_, err = io.WriteString(m.out, "Invalid input. Please enter a valid number.\n")
		return err
	}
	return m.p.breakdown(b)
}

func (m *menu) decode(text string, parse func(string) (ieee754.Bits, error)) error {
	input, err := m.prompt(text)
	if err != nil {
		return err
	}
	b, err := parse(input)
	if err != nil {
		glog.Warningf("rejected pattern input: %v", err)
		_, err = fmt.Fprintf(m.out, "Error: %v\n", err)
		return err
	}
	if _, err := fmt.Fprintf(m.out, "\nDecimal value: %s\n", report.FormatFloat(b.Float64(), 32)); err != nil {
		return err
	}
	return m.p.breakdown(b)
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
