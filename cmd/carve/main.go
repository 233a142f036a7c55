package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"

	"gioui.org/app"
	"github.com/seamly/carve"
	"github.com/seamly/carve/utils"
	"golang.org/x/term"
)

const helpBanner = `
┌─┐┌─┐┬─┐┬  ┬┌─┐
│  ├─┤├┬┘└┐┌┘├┤
└─┘┴ ┴┴└─ └┘ └─┘

Content aware image width reduction through seam carving.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// defaultOutput is the fallback destination when none is provided.
const defaultOutput = "resized.png"

// Version indicates the current build version.
var Version string

var (
	// Flags
	source      = flag.String("in", "", "Source image, directory or URL")
	destination = flag.String("out", "", "Destination image or directory")
	seams       = flag.Int("seams", -1, "Number of vertical seams to remove")
	blurRadius  = flag.Int("blur", 0, "Blur radius applied prior to the gradient pass")
	seamColor   = flag.String("color", "#ff0000", "Debug seam color")
	debug       = flag.Bool("debug", false, "Highlight the carved seams in the preview window")
	preview     = flag.Bool("preview", false, "Show a preview window of the carving process")
	workers     = flag.Int("conc", runtime.NumCPU(), "Number of files to process concurrently")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	stdin := bufio.NewReader(os.Stdin)
	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	// Prompt for the missing inputs when running on a terminal,
	// otherwise insist on the command line flags.
	if *source == "" {
		if !interactive {
			flag.Usage()
			log.Fatal(utils.DecorateText("\nPlease provide a source image!", utils.ErrorMessage))
		}
		*source = prompt(stdin, "Enter the input image filename (e.g. image.png or full path): ")
		if *source == "" {
			log.Fatal(utils.DecorateText("Please provide a source image!", utils.ErrorMessage))
		}
	}

	if *seams < 0 {
		if !interactive {
			flag.Usage()
			log.Fatal(utils.DecorateText("\nPlease provide the number of seams to remove!", utils.ErrorMessage))
		}
		n, err := strconv.Atoi(prompt(stdin, "Enter the number of seams to remove: "))
		if err != nil || n < 0 {
			log.Fatal(utils.DecorateText("The number of seams should be a non-negative integer!", utils.ErrorMessage))
		}
		*seams = n
	}

	if *destination == "" {
		if interactive {
			*destination = prompt(stdin,
				fmt.Sprintf("Enter the output image filename (press Enter for '%s'): ", defaultOutput))
		}
		if *destination == "" {
			*destination = defaultOutput
		}
	}

	proc := &carve.Processor{
		Seams:      *seams,
		BlurRadius: *blurRadius,
		SeamColor:  *seamColor,
		Debug:      *debug,
		Preview:    *preview,
	}

	op := &carve.Ops{
		Src:      *source,
		Dst:      *destination,
		PipeName: pipeName,
		Workers:  *workers,
	}

	if proc.Preview {
		// The carving process is invoked in a separate goroutine,
		// because app.Main() has to run on the main OS thread.
		go proc.Execute(op)
		app.Main()
	} else {
		proc.Execute(op)
	}
}

// prompt reads a single line answer from the reader.
func prompt(r *bufio.Reader, question string) string {
	fmt.Fprint(os.Stderr, question)
	answer, err := r.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(answer)
}
