// Command compressor compresses and decompresses text files with the Huffman
// or LZW method.
//
//	compressor [-v] [--log-file PATH] compress|decompress <huffman|lzw> <input> <output>
//
package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/jessevdk/go-flags"
	"github.com/op/go-logging"

	"github.com/chronos-tachyon/compressor"
	"github.com/chronos-tachyon/compressor/huffman"
	"github.com/chronos-tachyon/compressor/internal/filedriver"
	"github.com/chronos-tachyon/compressor/lzw"
)

const (
	bin = "compressor"

	usageErrorExitCode   = 2
	generalErrorExitCode = 1
)

var methods = map[string]compressor.Codec{
	"huffman": huffman.Codec{},
	"lzw":     lzw.Codec{},
}

type options struct {
	Verbose bool   `short:"v" long:"verbose" description:"Log debugging output."`
	LogFile string `long:"log-file" value-name:"PATH" description:"Append log output to PATH instead of standard error."`
}

type env struct {
	opts   options
	stdout io.Writer
	stderr io.Writer
	fs     billy.Filesystem
}

type methodArgs struct {
	Method string `positional-arg-name:"method" description:"huffman or lzw"`
	Input  string `positional-arg-name:"input"`
	Output string `positional-arg-name:"output"`
}

type CmdCompress struct {
	Args methodArgs `positional-args:"yes" required:"yes"`

	env *env
}

func (c *CmdCompress) Execute(args []string) error {
	return c.env.run(filedriver.Compress, c.Args)
}

type CmdDecompress struct {
	Args methodArgs `positional-args:"yes" required:"yes"`

	env *env
}

func (c *CmdDecompress) Execute(args []string) error {
	return c.env.run(filedriver.Decompress, c.Args)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, osfs.New("")))
}

func run(argv []string, stdout io.Writer, stderr io.Writer, fsys billy.Filesystem) int {
	e := &env{stdout: stdout, stderr: stderr, fs: fsys}

	parser := flags.NewParser(&e.opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = bin
	_, _ = parser.AddCommand("compress", "Compress a file",
		"Compress the text file <input> into <output>, which must not exist.",
		&CmdCompress{env: e})
	_, _ = parser.AddCommand("decompress", "Decompress a file",
		"Decompress <input> into the text file <output>, which must not exist.",
		&CmdDecompress{env: e})

	var closeLog func()
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		var err error
		closeLog, err = e.startLogging()
		if err != nil {
			return err
		}
		return command.Execute(args)
	}

	_, err := parser.ParseArgs(argv)
	if closeLog != nil {
		closeLog()
	}

	if flagsErr, ok := err.(*flags.Error); ok {
		if flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, flagsErr.Message)
			return 0
		}
		fmt.Fprintln(stderr, flagsErr.Message)
		return usageErrorExitCode
	}
	if err != nil {
		fmt.Fprintln(stderr, "ERR:", err)
		return generalErrorExitCode
	}
	return 0
}

func (e *env) run(dir filedriver.Direction, args methodArgs) error {
	codec, found := methods[args.Method]
	if !found {
		return fmt.Errorf("unknown method %q, want one of: %s", args.Method, strings.Join(methodNames(), ", "))
	}

	driver, err := filedriver.New(e.fs, filedriver.Options{})
	if err != nil {
		return err
	}

	var report filedriver.Report
	switch dir {
	case filedriver.Compress:
		report, err = driver.Compress(args.Input, args.Output, codec)
	case filedriver.Decompress:
		report, err = driver.Decompress(args.Input, args.Output, codec)
	}
	if err != nil {
		return err
	}

	_, err = report.WriteTo(e.stdout)
	return err
}

func methodNames() []string {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// startLogging installs the go-logging backend.  The returned func releases
// the log file, if one was opened.
func (e *env) startLogging() (func(), error) {
	var out io.Writer = e.stderr
	closeLog := func() {}
	if e.opts.LogFile != "" {
		f, err := e.fs.OpenFile(e.opts.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		out = f
		closeLog = func() { _ = f.Close() }
	}

	backend := logging.NewLogBackend(out, bin+": ", 0)
	formatter := logging.MustStringFormatter("%{level:8s} %{module:-20s} | %{message}")
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	if e.opts.Verbose {
		leveled.SetLevel(logging.DEBUG, "")
	}
	logging.SetBackend(leveled)
	return closeLog, nil
}
