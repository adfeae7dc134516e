package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gookit/color"

	"github.com/firesim/gridgen/internal/ctxlog"
	"github.com/firesim/gridgen/internal/grid"
)

// Request holds the parameters collected from the user: the grid dimensions
// and the target filename (before the .csv extension is enforced).
type Request struct {
	Grid     grid.Spec
	Filename string
}

// Prompter collects grid parameters interactively from a line-oriented
// input stream.
type Prompter struct {
	out   io.Writer
	lines <-chan string
}

// New returns a Prompter reading lines from in and printing prompts to out.
func New(in io.Reader, out io.Writer) *Prompter {
	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()
	return &Prompter{out: out, lines: lines}
}

// Collect walks the user through width, height, filename and a final
// confirmation. It returns nil when the user cancels: by answering anything
// but "y" at the final confirmation, by exhausting the input stream, or by
// interrupting the program (ctx cancellation). A nil result is the explicit
// "no values" outcome, not an error.
func (p *Prompter) Collect(ctx context.Context) *Request {
	logger := ctxlog.FromContext(ctx)
	p.banner()

	width, ok := p.askDimension(ctx, "width", "columns")
	if !ok {
		logger.Debug("Prompt cancelled while reading width.")
		return p.interrupted(ctx)
	}
	height, ok := p.askDimension(ctx, "height", "rows")
	if !ok {
		logger.Debug("Prompt cancelled while reading height.")
		return p.interrupted(ctx)
	}

	spec := grid.Spec{Width: width, Height: height}
	filename, ok := p.askFilename(ctx, spec)
	if !ok {
		logger.Debug("Prompt cancelled while reading filename.")
		return p.interrupted(ctx)
	}

	p.summary(spec, filename)
	fmt.Fprint(p.out, "\nCreate this grid file? (y/n): ")
	if !p.confirmed(ctx) {
		if ctx.Err() != nil {
			return p.interrupted(ctx)
		}
		fmt.Fprintln(p.out, "Operation cancelled")
		logger.Debug("User declined final confirmation.")
		return nil
	}

	logger.Debug("Prompt complete.", "width", width, "height", height, "filename", filename)
	return &Request{Grid: spec, Filename: filename}
}

func (p *Prompter) banner() {
	fmt.Fprintln(p.out, color.Bold.Sprint("Fire Simulation - Grid CSV Generator"))
	fmt.Fprintln(p.out, strings.Repeat("=", 50))
	fmt.Fprintln(p.out, "This tool creates empty grid files for the Fire simulation.")
	fmt.Fprintln(p.out, "All cells will be filled with zeros (empty) - the FireLayer will")
	fmt.Fprintln(p.out, "generate trees based on the density parameter in config.json.")
	fmt.Fprintln(p.out)
}

// askDimension loops until a positive integer is read. Values above the
// large-grid threshold need a y/n confirmation; declining returns to the
// prompt rather than cancelling.
func (p *Prompter) askDimension(ctx context.Context, name, unit string) (int, bool) {
	for {
		fmt.Fprintf(p.out, "Enter grid %s (%s): ", name, unit)
		line, ok := p.readLine(ctx)
		if !ok {
			return 0, false
		}

		value, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a valid number")
			continue
		}
		if value <= 0 {
			fmt.Fprintf(p.out, "%s must be greater than 0\n", strings.ToUpper(name[:1])+name[1:])
			continue
		}
		if value > grid.LargeDimensionThreshold {
			fmt.Fprintf(p.out, "Large grid (%d %s). Continue? (y/n): ", value, unit)
			if !p.confirmed(ctx) {
				if ctx.Err() != nil {
					return 0, false
				}
				continue
			}
		}
		return value, true
	}
}

// askFilename offers the default grid_{w}x{h}.csv name; a blank line accepts
// it, anything else is used verbatim.
func (p *Prompter) askFilename(ctx context.Context, spec grid.Spec) (string, bool) {
	defaultName := spec.DefaultFilename()
	fmt.Fprintf(p.out, "\nSuggested filename: %s\n", defaultName)
	fmt.Fprint(p.out, "Enter filename (or press Enter for default): ")

	line, ok := p.readLine(ctx)
	if !ok {
		return "", false
	}
	filename := strings.TrimSpace(line)
	if filename == "" {
		filename = defaultName
	}
	return filename, true
}

func (p *Prompter) summary(spec grid.Spec, filename string) {
	fmt.Fprintf(p.out, "\n%s\n", color.Bold.Sprint("Grid Summary:"))
	fmt.Fprintf(p.out, "   Dimensions: %d x %d\n", spec.Width, spec.Height)
	fmt.Fprintf(p.out, "   Total cells: %d\n", spec.Cells())
	fmt.Fprintf(p.out, "   Estimated file size: ~%d bytes\n", spec.EstimatedSize())
	fmt.Fprintf(p.out, "   Output file: %s\n", filename)
}

// confirmed reads one line and reports whether it is an explicit yes.
func (p *Prompter) confirmed(ctx context.Context) bool {
	line, ok := p.readLine(ctx)
	if !ok {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}

// interrupted reports an interrupt-driven cancellation to the user. The
// returned nil keeps every cancel path on the same sentinel.
func (p *Prompter) interrupted(ctx context.Context) *Request {
	if ctx.Err() != nil {
		fmt.Fprintln(p.out, "\nOperation cancelled by user")
	}
	return nil
}

// readLine blocks for the next input line. It reports false when the input
// stream is exhausted or the context is cancelled (user interrupt).
func (p *Prompter) readLine(ctx context.Context) (string, bool) {
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-p.lines:
		if !ok {
			return "", false
		}
		return line, true
	}
}
