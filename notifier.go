// SPDX-FileCopyrightText: 2024 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package dealwith

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// Notifier surfaces a handled failure to the user.  The fields always contain
// a severity and a message, plus whatever the Descriptor's Notify supplied.
// Notifiers are invoked synchronously and at most once per dispatch.
type Notifier func(Fields)

// notifyMessage is the slog message used by the logging notifiers.  The
// failure's own message is emitted as an attribute.
const notifyMessage = "request failed"

// LogNotifier creates a Notifier that writes each notification to the given
// logger at warn level.  A nil logger means slog.Default(), resolved on each call.
func LogNotifier(logger *slog.Logger) Notifier {
	return func(f Fields) {
		l := logger
		if l == nil {
			l = slog.Default()
		}

		l.Warn(notifyMessage, f.Append(nil)...)
	}
}

// DefaultNotifier is the Notifier a Store uses when none is supplied.
// It logs through slog.Default().
var DefaultNotifier Notifier = LogNotifier(nil)

// ConsoleNotifier creates a Notifier that writes human-readable, colorized
// lines to w.  Colors are disabled when noColor is set, which is appropriate
// for anything that isn't a terminal.
func ConsoleNotifier(w io.Writer, noColor bool) Notifier {
	return LogNotifier(
		slog.New(
			tint.NewHandler(w, &tint.Options{
				Level:      slog.LevelWarn,
				TimeFormat: time.Kitchen,
				NoColor:    noColor,
			}),
		),
	)
}
