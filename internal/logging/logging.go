// Package logging configures the zerolog logger shared by shade commands.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console-writer logger at the given level. Levels follow
// zerolog's names (trace, debug, info, warn, error).
func New(out io.Writer, level string) (zerolog.Logger, error) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("failed to parse log level %q: %w", level, err)
	}

	writer := zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	return zerolog.New(writer).Level(parsed).With().Timestamp().Logger(), nil
}
