package piecetree

// config holds construction-time settings applied by Option values, in
// the same functional-options idiom as the teacher's
// internal/engine/buffer/options.go.
type config struct {
	defaultEOL   string
	normalizeEOL bool
}

func defaultConfig() config {
	return config{defaultEOL: "\n", normalizeEOL: true}
}

// Option configures a PieceTree at construction time.
type Option func(*config)

// WithDefaultEOL sets the end-of-line string used when the accepted
// text carries no terminators of its own to vote with (spec.md §6).
// eol must be "\n", "\r\n", or "\r"; any other value is ignored.
func WithDefaultEOL(eol string) Option {
	return func(c *config) {
		switch eol {
		case "\n", "\r\n", "\r":
			c.defaultEOL = eol
		}
	}
}

// WithEOLNormalization controls whether construction rewrites every
// line terminator in the initial text to the decided EOL. Defaults to
// true; pass false to preserve the input's terminators exactly and
// leave EOLNormalized() false.
func WithEOLNormalization(normalize bool) Option {
	return func(c *config) { c.normalizeEOL = normalize }
}
