package main

import (
	"fmt"
	"io"
)

const commonHelp = `  -c, --config string   config file (default: folhaponto.yaml if present)
      --year int        reference year
      --month int       reference month (1-12)
  -s, --source string   source workbook (default: from config pattern)
  -q, --quiet           only log warnings and errors
  -v, --verbose         log roster, grids and placements
`

func printUsage(w io.Writer) {
	fmt.Fprint(w, `folhaponto fills the monthly timesheet form for every person in a workbook.

Usage:
  folhaponto [command] [flags]

Commands:
  generate    write one filled form per person (default)
  sample      write a demo source workbook
  calibrate   stamp a coordinate mask over the blank form
  version     print the version

Environment:
  FOLHAPONTO_CONFIG, FOLHAPONTO_YEAR, FOLHAPONTO_MONTH, FOLHAPONTO_SOURCE,
  FOLHAPONTO_TEMPLATE, FOLHAPONTO_OUTPUT_DIR (a .env file is read if present)

Run 'folhaponto <command> --help' for command flags.
`)
}

func printGenerateUsage(w io.Writer) {
	fmt.Fprint(w, "Usage:\n  folhaponto generate [flags]\n\nFlags:\n"+commonHelp+
		`  -t, --template string     blank form PDF
  -o, --output-dir string   directory for filled forms
  -n, --dry-run             validate and lay out, write nothing
`)
}

func printSampleUsage(w io.Writer) {
	fmt.Fprint(w, "Usage:\n  folhaponto sample [flags]\n\nFlags:\n"+commonHelp+
		`  -p, --people int      number of people to generate (default 5)
  -o, --output string   workbook to write (default: the configured source path)
`)
}

func printCalibrateUsage(w io.Writer) {
	fmt.Fprint(w, "Usage:\n  folhaponto calibrate [flags]\n\nFlags:\n"+commonHelp+
		`  -t, --template string   blank form PDF
  -o, --output string     mask PDF to write (default mascara_grade.pdf)
`)
}
