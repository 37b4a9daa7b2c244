package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

var levels = map[string]logiface.Level{
	logiface.LevelDisabled.String():      logiface.LevelDisabled,
	logiface.LevelEmergency.String():     logiface.LevelEmergency,
	logiface.LevelAlert.String():         logiface.LevelAlert,
	logiface.LevelCritical.String():      logiface.LevelCritical,
	logiface.LevelError.String():         logiface.LevelError,
	logiface.LevelWarning.String():       logiface.LevelWarning,
	logiface.LevelNotice.String():        logiface.LevelNotice,
	logiface.LevelInformational.String(): logiface.LevelInformational,
	logiface.LevelDebug.String():         logiface.LevelDebug,
	logiface.LevelTrace.String():         logiface.LevelTrace,
	// aliases
	`none`:  logiface.LevelDisabled,
	`error`: logiface.LevelError,
	`warn`:  logiface.LevelWarning,
}

func parseLevel(s string) (logiface.Level, error) {
	if level, ok := levels[strings.ToLower(strings.TrimSpace(s))]; ok {
		return level, nil
	}
	return logiface.LevelDisabled, fmt.Errorf(`summator: invalid log level: %q`, s)
}

// levelNames returns the canonical level names, ordered by severity.
func levelNames() []string {
	names := make([]string, 0, len(levels))
	for name, level := range levels {
		if name == level.String() {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		return levels[names[i]] < levels[names[j]]
	})
	return names
}

// newLogger builds a JSON logger writing to w, or returns nil if logging is
// disabled (all logiface builders are nil-safe).
func newLogger(w io.Writer, level string) (*logiface.Logger[logiface.Event], error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	if !lvl.Enabled() {
		return nil, nil
	}
	return stumpy.L.New(
		stumpy.L.WithStumpy(stumpy.WithWriter(w)),
		stumpy.L.WithLevel(lvl),
	).Logger(), nil
}
