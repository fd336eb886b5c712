package ui

import (
	"fmt"

	"github.com/fatih/color"
)

type Logger struct {
	Debug bool
}

func NewLogger(debug bool) *Logger {
	return &Logger{Debug: debug}
}

func (l *Logger) Debugf(format string, args ...any) {
	if l.Debug {
		fmt.Printf(color.HiBlackString("[DEBUG] ")+format, args...)
	}
}

func (l *Logger) Infof(format string, args ...any) {
	fmt.Printf(color.CyanString("[INFO] ")+format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	fmt.Printf(color.RedString("[ERROR] ")+format, args...)
}
