package logger

import "log/slog"

// DeleteLevelAttr drops the level from top-level records.
// Use as, or within, a [log/slog.HandlerOptions.ReplaceAttr].
func DeleteLevelAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.LevelKey {
		return slog.Attr{}
	}

	return a
}

// DeleteMessageAttr drops the message from top-level records.
// Use as, or within, a [log/slog.HandlerOptions.ReplaceAttr].
func DeleteMessageAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.MessageKey {
		return slog.Attr{}
	}

	return a
}
