package config

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUsage is returned when the command line does not match UsageLine.
var ErrUsage = errors.New("usage error")

// ErrTooManyArgs is returned when more than three positional arguments are given.
var ErrTooManyArgs = fmt.Errorf("%w: too many arguments", ErrUsage)

// Options holds everything needed for one run of the tool.
type Options struct {
	Path       string
	Horizontal int
	Vertical   int // Equal to Horizontal unless given explicitly
	AutoOrient bool
	Verbose    bool
}

// ParseArgs builds Options from the positional arguments FILE_OR_DIR [HORIZONTAL] [VERTICAL].
func ParseArgs(args []string) (*Options, error) {
	switch {
	case len(args) < 1:
		return nil, fmt.Errorf("%w: missing FILE_OR_DIR", ErrUsage)
	case len(args) > 3:
		return nil, ErrTooManyArgs
	}

	opts := &Options{
		Path:       args[0],
		Horizontal: DefaultPartitions,
	}

	if len(args) > 1 {
		h, err := parseCount("HORIZONTAL", args[1])
		if err != nil {
			return nil, err
		}
		opts.Horizontal = h
	}
	opts.Vertical = opts.Horizontal
	if len(args) > 2 {
		v, err := parseCount("VERTICAL", args[2])
		if err != nil {
			return nil, err
		}
		opts.Vertical = v
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// Validate checks that the options describe a runnable job.
func (o *Options) Validate() error {
	if o.Path == "" {
		return fmt.Errorf("%w: empty path", ErrUsage)
	}
	if o.Horizontal < 1 {
		return fmt.Errorf("%w: HORIZONTAL must be at least 1, got %d", ErrUsage, o.Horizontal)
	}
	if o.Vertical < 1 {
		return fmt.Errorf("%w: VERTICAL must be at least 1, got %d", ErrUsage, o.Vertical)
	}
	return nil
}

func parseCount(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", ErrUsage, name, s)
	}
	return n, nil
}
