package dump

const (
	// Unbounded is the limit that reads the source until it is exhausted.
	Unbounded    = -1
	DefaultWidth = 16
	MaxWidth     = 1 << 20
)

// Config is built once per invocation and never modified afterwards.
type Config struct {
	Offset int64
	Limit  int64
	Width  int
	// Path is empty for standard input.
	Path string
}

func DefaultConfig() Config {
	return Config{
		Offset: 0,
		Limit:  Unbounded,
		Width:  DefaultWidth,
	}
}

func (c Config) Validate() error {
	if c.Width <= 0 {
		return Errorf(KindInvalidArgument, "bytes per line must be positive, got %d", c.Width)
	}
	if c.Width > MaxWidth {
		return Errorf(KindInvalidArgument, "bytes per line must be at most %d, got %d", MaxWidth, c.Width)
	}
	if c.Offset < 0 {
		return Errorf(KindInvalidArgument, "offset must not be negative, got %d", c.Offset)
	}
	if c.Limit < Unbounded {
		return Errorf(KindInvalidArgument, "number of bytes must not be negative, got %d", c.Limit)
	}
	return nil
}
