package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Render-Screenshot/rs-go/screenshot"
)

// optionFlags are the screenshot options shared by sign, take and batch.
type optionFlags struct {
	width    int
	height   int
	format   string
	fullPage bool
	device   string
	preset   string
	params   []string
}

func (f *optionFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.IntVar(&f.width, "width", 0, "viewport width in pixels")
	fl.IntVar(&f.height, "height", 0, "viewport height in pixels")
	fl.StringVar(&f.format, "format", "", "image format: png, jpeg, webp or pdf")
	fl.BoolVar(&f.fullPage, "full-page", false, "capture the full scrollable page")
	fl.StringVar(&f.device, "device", "", "emulate a device by id")
	fl.StringVar(&f.preset, "preset", "", "apply a saved preset by id")
	fl.StringArrayVarP(&f.params, "param", "p", nil, "extra option as key=value, repeatable")
}

func (f *optionFlags) apply(o screenshot.Options) (screenshot.Options, error) {
	if f.width > 0 {
		o = o.Width(f.width)
	}
	if f.height > 0 {
		o = o.Height(f.height)
	}
	if f.format != "" {
		o = o.Format(screenshot.Format(f.format))
	}
	if f.fullPage {
		o = o.FullPage(true)
	}
	if f.device != "" {
		o = o.Device(f.device)
	}
	if f.preset != "" {
		o = o.Preset(f.preset)
	}
	for _, p := range f.params {
		key, value, err := parseParam(p)
		if err != nil {
			return screenshot.Options{}, err
		}
		o = o.With(key, value)
	}
	return o, nil
}

// parseParam splits key=value and types the value: booleans and numbers are
// recognized, comma-separated values become lists, anything else stays a
// string.
func parseParam(p string) (string, any, error) {
	key, raw, ok := strings.Cut(p, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", nil, fmt.Errorf("invalid --param %q: want key=value", p)
	}
	return key, typedValue(raw), nil
}

func typedValue(raw string) any {
	if raw == "true" || raw == "false" {
		return raw == "true"
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	if strings.Contains(raw, ",") {
		parts := strings.Split(raw, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return raw
}

// target builds the base option set from a positional argument: markup when
// html is set, a URL otherwise.
func target(arg string, html bool) screenshot.Options {
	if html {
		return screenshot.HTML(arg)
	}
	return screenshot.URL(arg)
}
