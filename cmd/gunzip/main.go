// Command gunzip is the CLI driver for the tinflate/gzip packages: file
// open/read/write, flag parsing, and progress reporting live here, kept
// deliberately thin around the decoder (see SPEC_FULL.md §6).
package main

/*
 * Generalizes blast's two single-purpose binaries (cmd/blast, cmd/implode)
 * into one binary with two subcommands, built the way cosnicolaou/pbzip2's
 * cmd/pbzip2/main.go builds its command set: cloudeng.io/cmdutil/subcmd
 * for flag-struct-driven subcommands, schollz/progressbar/v2 for a
 * size-known-up-front progress bar.
 */

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"

	"cloudeng.io/cmdutil/subcmd"
	"github.com/schollz/progressbar/v2"

	"github.com/JoshVarga/tinflate"
	"github.com/JoshVarga/tinflate/gzip"
)

type inflateFlags struct {
	InputFile  string `subcmd:"i,,'input file containing a raw DEFLATE stream'"`
	OutputFile string `subcmd:"o,,'output file'"`
	Size       int    `subcmd:"size,0,'uncompressed size in bytes, required since inflate has no adaptive resizing'"`
}

type gunzipFlags struct {
	InputFile   string `subcmd:"i,,'input file containing a gzip stream'"`
	OutputFile  string `subcmd:"o,,'output file'"`
	ProgressBar bool   `subcmd:"progress,false,display a progress bar while decompressing'"`
}

var cmdSet *subcmd.CommandSet

func init() {
	inflateCmd := subcmd.NewCommand("inflate",
		subcmd.MustRegisterFlagStruct(&inflateFlags{}, nil, nil),
		runInflate, subcmd.ExactlyNumArguments(0))
	inflateCmd.Document(`decompress a raw DEFLATE stream; the caller must know the uncompressed size up front.`)

	gunzipCmd := subcmd.NewCommand("gunzip",
		subcmd.MustRegisterFlagStruct(&gunzipFlags{}, nil, nil),
		runGunzip, subcmd.ExactlyNumArguments(0))
	gunzipCmd.Document(`decompress a gzip file, self-sizing from its ISIZE trailer.`)

	cmdSet = subcmd.NewCommandSet(inflateCmd, gunzipCmd)
	cmdSet.Document(`decompress raw DEFLATE streams or gzip files.`)
}

func main() {
	cmdSet.MustDispatch(context.Background())
}

func runInflate(ctx context.Context, values interface{}, args []string) error {
	cl := values.(*inflateFlags)
	if cl.InputFile == "" || cl.OutputFile == "" {
		return fmt.Errorf("-i and -o are required")
	}
	if cl.Size <= 0 {
		return fmt.Errorf("-size must be the known uncompressed size in bytes")
	}

	source, err := ioutil.ReadFile(cl.InputFile)
	if err != nil {
		return err
	}

	dest := make([]byte, cl.Size)
	n, err := tinflate.Uncompress(dest, source)
	if err != nil {
		if err == tinflate.ErrBufError {
			return fmt.Errorf("%w: retry with a larger -size", err)
		}
		return err
	}

	return ioutil.WriteFile(cl.OutputFile, dest[:n], 0644)
}

func runGunzip(ctx context.Context, values interface{}, args []string) error {
	cl := values.(*gunzipFlags)
	if cl.InputFile == "" || cl.OutputFile == "" {
		return fmt.Errorf("-i and -o are required")
	}

	source, err := ioutil.ReadFile(cl.InputFile)
	if err != nil {
		return err
	}

	size, err := gzip.Size(source)
	if err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	if cl.ProgressBar {
		bar = progressbar.NewOptions(size,
			progressbar.OptionSetBytes(size),
			progressbar.OptionSetWriter(os.Stderr))
	}

	dest := make([]byte, size)
	n, err := gzip.Uncompress(dest, source)
	if err != nil {
		return err
	}
	if bar != nil {
		bar.Add(n)
		fmt.Fprintln(os.Stderr)
	}

	return ioutil.WriteFile(cl.OutputFile, dest[:n], 0644)
}
