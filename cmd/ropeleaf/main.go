// Command ropeleaf inspects how a string of text is packed into rope
// leaves: how the gap buffer's construction lays bytes out, what its
// summary looks like, and (given a replacement) how an edit might overflow
// a leaf into extra siblings.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/kebaren/rope/pkg/rope"
)

func main() {
	app := &cli.App{
		Name:  "ropeleaf",
		Usage: "inspect rope leaf construction, summaries, and replacement overflow",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "text",
				Usage: "text to load into the leaf (reads stdin if omitted)",
			},
			&cli.IntFlag{
				Name:  "max-bytes",
				Usage: "leaf capacity",
				Value: rope.DefaultMaxBytes,
			},
			&cli.IntFlag{
				Name:  "replace-start",
				Usage: "start byte offset of a replacement to simulate",
				Value: -1,
			},
			&cli.IntFlag{
				Name:  "replace-end",
				Usage: "end byte offset of a replacement to simulate",
			},
			&cli.StringFlag{
				Name:  "replace-with",
				Usage: "replacement string for --replace-start/--replace-end",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colorized output even on a terminal",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	text := c.String("text")
	if text == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	}

	maxBytes := c.Int("max-bytes")

	useColor := isatty.IsTerminal(os.Stdout.Fd()) && !c.Bool("no-color")
	heading := color.New(color.FgCyan, color.Bold)
	label := color.New(color.FgYellow)
	if !useColor {
		heading.DisableColor()
		label.DisableColor()
	}

	gb := rope.NewFromString(maxBytes, text)
	summary := gb.Summarize()

	heading.Println("leaf")
	label.Print("left_chunk  ")
	fmt.Printf("%q\n", gb.LeftChunk())
	label.Print("right_chunk ")
	fmt.Printf("%q\n", gb.RightChunk())
	label.Print("bytes       ")
	fmt.Println(summary.Bytes)
	label.Print("line_breaks ")
	fmt.Println(summary.LineBreaks)
	label.Print("min_bytes   ")
	fmt.Println(gb.MinBytes())
	label.Print("chunk_min   ")
	fmt.Println(gb.ChunkMin())

	start := c.Int("replace-start")
	if start < 0 {
		return nil
	}
	end := c.Int("replace-end")
	replacement := c.String("replace-with")

	heading.Println("\nreplace")
	newSummary, extras := gb.Replace(summary, start, end, replacement)

	label.Print("left_chunk  ")
	fmt.Printf("%q\n", gb.LeftChunk())
	label.Print("right_chunk ")
	fmt.Printf("%q\n", gb.RightChunk())
	label.Print("bytes       ")
	fmt.Println(newSummary.Bytes)
	label.Print("line_breaks ")
	fmt.Println(newSummary.LineBreaks)

	if len(extras) == 0 {
		fmt.Println("no overflow")
		return nil
	}

	label.Printf("overflowed into %d extra leaf(-ves)\n", len(extras))
	for i, extra := range extras {
		fmt.Printf("  [%d] %q\n", i, extra.LeftChunk()+extra.RightChunk())
	}

	return nil
}
