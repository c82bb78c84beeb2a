// Command piechart renders a chart document to SVG, PNG or PDF.
//
// Usage:
//
//	piechart -in chart.yaml -out chart.svg
//	piechart -in chart.json -out chart.png -mode interactive -tap 2
//	piechart -in chart.yaml -table
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/gogpu/piechart"
	"github.com/gogpu/piechart/internal/config"
	applog "github.com/gogpu/piechart/internal/log"
	"github.com/gogpu/piechart/render"
	_ "github.com/gogpu/piechart/render/pdf"
	_ "github.com/gogpu/piechart/render/raster"
	_ "github.com/gogpu/piechart/render/svg"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("piechart: %v", err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("piechart", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		in       = fs.String("in", "", "chart document (.yaml, .yml or .json)")
		out      = fs.String("out", "", "output file, - for stdout")
		format   = fs.String("format", "", "output backend ("+strings.Join(render.Backends(), ", ")+"); default from -out extension")
		width    = fs.Float64("width", 0, "canvas width override")
		height   = fs.Float64("height", 0, "canvas height override")
		mode     = fs.String("mode", "", "label mode override: static or interactive")
		taps     = fs.String("tap", "", "comma-separated slice indices tapped in order")
		table    = fs.Bool("table", false, "print the slice layout table")
		logLevel = fs.String("log-level", "", "log level override: debug, info, warn, error")
		logFile  = fs.String("log-file", "", "rotated log file")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		fs.Usage()
		return errors.New("missing -in")
	}

	lopts := config.LogOptions()
	if *logLevel != "" {
		lopts.Level = *logLevel
	}
	if *logFile != "" {
		lopts.File = *logFile
	}
	logger, closer := applog.New(lopts, stderr)
	defer closer.Close()
	piechart.SetLogger(logger)
	defer piechart.SetLogger(nil)

	doc, err := config.Load(*in)
	if err != nil {
		return err
	}
	if *width > 0 {
		doc.Width = *width
	}
	if *height > 0 {
		doc.Height = *height
	}
	if *mode != "" {
		doc.Mode = *mode
	}

	v, err := doc.Build()
	if err != nil {
		return fmt.Errorf("build %s: %w", *in, err)
	}

	indices, err := parseTaps(*taps)
	if err != nil {
		return err
	}
	for _, i := range indices {
		if !v.Tap(i) {
			logger.Warn("tap ignored", "index", i, "mode", v.Mode().String())
		}
	}

	if *table {
		if err := writeTable(stdout, v); err != nil {
			return err
		}
	}

	if *out == "" {
		return nil
	}
	name := *format
	if name == "" {
		if name, err = backendFor(*out); err != nil {
			return err
		}
	}
	if err := encode(*out, stdout, v, name); err != nil {
		return err
	}
	logger.Info("chart rendered",
		"out", *out,
		"backend", name,
		"slices", len(v.Slices()),
		"selection", v.Selection().String())
	return nil
}

func encode(path string, stdout io.Writer, v *piechart.View, backend string) error {
	if path == "-" {
		return render.Encode(stdout, v.Scene(), backend)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.Encode(f, v.Scene(), backend); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func backendFor(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".svg":
		return "svg", nil
	case ".png":
		return "png", nil
	case ".pdf":
		return "pdf", nil
	default:
		return "", fmt.Errorf("cannot infer output format from %q; use -format", path)
	}
}

func parseTaps(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out []int
	for _, f := range strings.Split(s, ",") {
		i, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid -tap index %q", f)
		}
		out = append(out, i)
	}
	return out, nil
}

func writeTable(w io.Writer, v *piechart.View) error {
	visible := v.VisibleLabels()
	rows := make([][]string, 0, len(v.Slices()))
	for _, s := range v.Slices() {
		shown := ""
		if slices.Contains(visible, s.Index) {
			shown = v.Label(s.Index)
		}
		rows = append(rows, []string{
			strconv.Itoa(s.Index),
			s.Item.Label,
			strconv.FormatFloat(s.Item.Value, 'g', -1, 64),
			fmt.Sprintf("%.1f%%", s.Share*100),
			fmt.Sprintf("%.1f", piechart.Degrees(s.StartAngle)),
			fmt.Sprintf("%.1f", piechart.Degrees(s.EndAngle)),
			render.Hex(v.Color(s.Index)),
			shown,
		})
	}

	table := tablewriter.NewTable(w)
	table.Header([]string{"#", "Label", "Value", "Share", "Start", "End", "Color", "Shown"})
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("table rows: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}
