package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"

	"github.com/ericlevine/datamatrix"
	"github.com/ericlevine/datamatrix/charset"
	"github.com/ericlevine/datamatrix/render"
)

var g = struct {
	fn        string // output file
	cs        string // input conversion charset
	size      string // symbol size, HxW
	quiet     int    // quiet zone modules
	eci       bool   // prepend ECI directive
	extension bool   // directives at start of message
	testOnly  bool   // print symbol size only
	reverse   bool   // reverse colours
	verbose   bool   // report mode and size
	raw       bool   // no charset conversion
}{
	quiet: 1,
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	fmt.Fprint(w, "Data Matrix ECC-200 generator\nUsage: ",
		cl.Program(), " ", cl.UsageLine(), ` [string ...]
If no string is given, data is read from standard input and the final
newline is stripped.  Text is converted from UTF-8 to ISO-8859-1 when
possible, and left as UTF-8 otherwise.

`)
	cl.PrintOptions(w)
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println("dmgen version 0.1.0")
	os.Exit(0)
}

var modes = []string{
	"auto", "ascii", "c40", "text", "base256", "x12", "edifact", "raw",
}

func parseFlags() (*datamatrix.Options, render.Format, *render.Options) {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version").SetFlag()
	mode := getopt.Enum('m', modes, "auto",
		"compaction mode, one of: "+strings.Join(modes, ", "), "mode")
	getopt.Flag(&g.size, 's', `symbol size, e.g. "16x16" or "8x32"; `+
		`default is the smallest that fits`, "HxW")
	getopt.Flag(&g.quiet, 'q', "quiet zone modules", "modules")
	getopt.Flag(&g.extension, 'x', `treat the message up to the first "." `+
		`as extension directives`)
	getopt.Flag(&g.eci, 'e', "announce the character set with an ECI")
	getopt.FlagLong(&g.cs, "charset", 'c', "convert input to the named "+
		"character set", "name")
	getopt.Flag(&g.raw, '8', "encode input bytes without conversion")
	getopt.Flag(&g.testOnly, 'T', "print the symbol size and exit")
	scale := getopt.Unsigned('S', 4,
		&getopt.UnsignedLimit{Base: 0, Bits: 16, Min: 1, Max: 1 << 12},
		"image pixels per module; ignored for types utf8 and ascii",
		"scale")
	getopt.Flag(&g.reverse, 'r', "reverse colours")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	getopt.Flag(&g.verbose, 'v', "report mode and size on standard error")
	formats := render.Formats()
	ff := getopt.Enum('t', append(formats, "tif"), "",
		"output format, one of: "+strings.Join(formats, ", ")+
			"; if no -o is given and standard output is a TTY, "+
			"default is utf8, otherwise png", "type")

	getopt.Parse()
	if g.raw && (getopt.IsSet('c') || g.eci) {
		fmt.Fprintln(os.Stderr, "-8 is incompatible with -c and -e")
		usage()
	}
	if g.eci && g.extension {
		fmt.Fprintln(os.Stderr, "-e and -x are incompatible")
		usage()
	}
	if g.quiet < 0 {
		fmt.Fprintln(os.Stderr, "-q must not be negative")
		usage()
	}

	m, err := datamatrix.ParseMode(*mode)
	if err != nil {
		log.Fatalln(err)
	}
	opts := &datamatrix.Options{
		Mode:      m,
		QuietZone: g.quiet,
		Extension: g.extension || g.eci,
		TestOnly:  g.testOnly,
	}
	if g.size != "" {
		if opts.Height, opts.Width, err = parseSize(g.size); err != nil {
			log.Fatalln(err)
		}
	}

	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "utf8"
		} else {
			*ff = "png"
		}
	}
	f, err := render.ParseFormat(*ff)
	if err != nil {
		log.Fatalln(err)
	}
	if g.fn == "-" {
		g.fn = ""
	}
	return opts, f, &render.Options{Scale: int(*scale), Reverse: g.reverse}
}

// parseSize parses "HxW", or a single number for a square symbol.
func parseSize(s string) (int, int, error) {
	hs, ws, found := strings.Cut(strings.ToLower(s), "x")
	if !found {
		ws = hs
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("%q: bad size", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("%q: bad size", s)
	}
	return h, w, nil
}

// message converts s to the bytes to encode, prefixed with an ECI
// directive if requested.
func message(s string) ([]byte, error) {
	if g.raw {
		return []byte(s), nil
	}
	cs := charset.Guess(s)
	if g.cs != "" {
		if cs = charset.ByName(g.cs); cs == nil {
			return nil, fmt.Errorf("%q: unknown character set", g.cs)
		}
	}
	b, err := cs.Encode(s)
	if err != nil {
		return nil, err
	}
	if g.verbose {
		log.Println("charset:", cs)
	}
	if !g.eci {
		return b, nil
	}
	return append([]byte(cs.Extension()+"."), b...), nil
}

func main() {
	log.SetFlags(0)
	opts, f, ropts := parseFlags()

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}
	text, err := message(s)
	if err != nil {
		log.Fatalln(err)
	}

	sym, err := datamatrix.Generate(text, opts)
	if err != nil {
		log.Fatalf("%v: %v", datamatrix.StatusOf(err), err)
	}
	if g.verbose {
		log.Printf("mode %v, %d data codewords, %dx%d symbol",
			sym.Mode, sym.DataLength, sym.Height, sym.Width)
	}
	if g.testOnly {
		fmt.Printf("%dx%d\n", sym.Height, sym.Width)
		return
	}
	write(sym, f, ropts)
}

func write(sym *datamatrix.Symbol, f render.Format, ropts *render.Options) {
	var buf bytes.Buffer
	if err := sym.Write(&buf, f, ropts); err != nil {
		log.Fatalln(err)
	}
	var w = os.Stdout
	open := g.fn != ""
	if open {
		var err error
		if w, err = os.OpenFile(g.fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			log.Fatalln(err)
		}
	}
	_, err := w.Write(buf.Bytes())
	if open && err == nil {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}
