// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tracelog is a small leveled tracer for optional, off-by-default
// diagnostic output from the narrow-phase pipeline.
package tracelog

import (
	"fmt"
	"os"
	"time"
)

// Level filters which trace messages a Logger emits.
type Level int

// DEBUG is the only level the pipeline currently emits at.
const DEBUG Level = 0

// off is the default level: higher than any level SetLevel is ever
// called with, so a fresh Logger emits nothing until a caller opts in.
const off Level = 1

// Logger writes leveled trace messages to stdout, filtered by level.
type Logger struct {
	name  string
	level Level
}

// New returns a Logger with the given name. It emits nothing until
// SetLevel(DEBUG) is called.
func New(name string) *Logger {
	return &Logger{name: name, level: off}
}

// SetLevel sets the minimum level this logger emits at.
func (l *Logger) SetLevel(level Level) {
	l.level = level
}

// Debug emits a trace message if the logger's level is DEBUG or lower.
func (l *Logger) Debug(format string, v ...interface{}) {
	if l.level > DEBUG {
		return
	}
	ts := time.Now().UTC().Format("15:04:05.000000")
	fmt.Fprintf(os.Stdout, "%s:D:%s:%s\n", ts, l.name, fmt.Sprintf(format, v...))
}
