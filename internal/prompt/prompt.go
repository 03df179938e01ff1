// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt collects the award year to search for from an interactive
// console.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Default inclusive year bounds accepted at the prompt.
const (
	DefaultMinYear = 2000
	DefaultMaxYear = 2023
)

// Question is written before every read.
const Question = "Enter the year from which to search for Nobel Prize winners: "

// ErrNoInput is returned when the input source ends before a valid year was read.
var ErrNoInput = errors.New("no year entered")

// ErrYearOutOfRange is returned by ValidateYear.
var ErrYearOutOfRange = errors.New("year out of range")

// YearPrompt reads a year line by line until one is a valid integer in
// [Min, Max]. It never gives up on bad input; only the end of the input
// stops it.
type YearPrompt struct {
	in       *bufio.Scanner
	out      io.Writer
	Min, Max int
}

// NewYearPrompt returns a prompt reading from in and writing to out with the
// default bounds.
func NewYearPrompt(in io.Reader, out io.Writer) *YearPrompt {
	return &YearPrompt{
		in:  bufio.NewScanner(in),
		out: out,
		Min: DefaultMinYear,
		Max: DefaultMaxYear,
	}
}

var warn = color.New(color.FgRed)

// GetYear asks for a year until a valid one is entered.
func (p *YearPrompt) GetYear() (int, error) {
	for {
		fmt.Fprint(p.out, Question)

		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return 0, fmt.Errorf("%w: %w", ErrNoInput, err)
			}
			return 0, ErrNoInput
		}

		year, err := strconv.Atoi(strings.TrimSpace(p.in.Text()))
		if err != nil {
			warn.Fprintln(p.out, "Entered value is not a number! Try again.")
			fmt.Fprintln(p.out)
			continue
		}

		if err := ValidateYear(year, p.Min, p.Max); err != nil {
			warn.Fprintf(p.out, "Entered number is not a year between %d and %d!\n", p.Min, p.Max)
			fmt.Fprintln(p.out, "Try again.")
			fmt.Fprintln(p.out)
			continue
		}
		return year, nil
	}
}

// ValidateYear reports whether year lies in the inclusive range [min, max].
func ValidateYear(year, min, max int) error {
	if year < min || year > max {
		return fmt.Errorf("%w: %d is not between %d and %d", ErrYearOutOfRange, year, min, max)
	}
	return nil
}
