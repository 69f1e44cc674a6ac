package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

var (
	Output io.Writer = color.Output
	// Delay is the pause after every printed message so play is readable.
	Delay = 500 * time.Millisecond
)

func Printfln(format string, args ...interface{}) {
	Println(fmt.Sprintf(format, args...))
}

func Printlns(lines []string) {
	Println(strings.Join(lines, "\n"))
}

func Println(args ...interface{}) {
	_, _ = fmt.Fprintln(Output, args...)
	if Delay > 0 {
		time.Sleep(Delay)
	}
}
