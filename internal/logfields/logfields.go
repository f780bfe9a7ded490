package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPlatform  = "platform"
	KeyLevel     = "platform_level"
	KeyThreshold = "threshold"
	KeyFeature   = "feature"
	KeyPosition  = "position"
	KeyMaterial  = "material"
	KeyPath      = "path"
	KeyBuildID   = "build_id"
	KeyStep      = "step"
	KeyOp        = "op"
	KeyListen    = "listen"
	KeyError     = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Platform(id string) slog.Attr     { return slog.String(KeyPlatform, id) }
func Level(label string) slog.Attr     { return slog.String(KeyLevel, label) }
func Threshold(label string) slog.Attr { return slog.String(KeyThreshold, label) }
func Feature(f string) slog.Attr       { return slog.String(KeyFeature, f) }
func Position(p int) slog.Attr         { return slog.Int(KeyPosition, p) }
func Material(m string) slog.Attr      { return slog.String(KeyMaterial, m) }
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func BuildID(id string) slog.Attr      { return slog.String(KeyBuildID, id) }
func Listen(addr string) slog.Attr     { return slog.String(KeyListen, addr) }
func Error(err error) slog.Attr {
	if err == nil { return slog.String(KeyError, "") }
	return slog.String(KeyError, err.Error())
}
