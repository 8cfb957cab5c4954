package utils

import (
	"fmt"

	"github.com/fatih/color"
)

// Console print helpers for the CLI. These write user-facing output;
// internal diagnostics go through the hclog loggers instead.

func Error(format string, a ...interface{}) {
	color.Red(fmt.Sprintf(format, a...))
}

func Warn(format string, a ...interface{}) {
	color.Yellow(fmt.Sprintf(format, a...))
}

func Success(format string, a ...interface{}) {
	color.Green(fmt.Sprintf(format, a...))
}

func Info(format string, a ...interface{}) {
	color.Blue(fmt.Sprintf(format, a...))
}

// Label prints a cyan "Label:" followed by a plain value, the layout used
// by `about show` and `contact show`.
func Label(label string, value string) {
	if len(value) < 1 {
		value = "Not set"
	}
	fmt.Printf("%s %s\n", color.CyanString("%s:", label), value)
}
