package dump

import (
	"io"
)

// Dump writes one formatted line per chunk read from source to w. It seeks
// first when cfg.Offset is non-zero, then reads until the source is
// exhausted. A limit of zero still performs one empty read and emits nothing.
// Bytes read before a read error are still printed as a short line.
//
// Dump does not close source; the caller owns it.
func Dump(source *Source, cfg Config, w io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Offset != 0 {
		if err := source.SeekTo(cfg.Offset); err != nil {
			return err
		}
	}

	offset := cfg.Offset
	limit := cfg.Limit
	buffer := make([]byte, cfg.Width)
	for {
		chunk := buffer
		if limit > Unbounded && limit < int64(cfg.Width) {
			chunk = buffer[:limit]
		}
		n, err := source.ReadChunk(chunk)
		if n > 0 {
			line := Line{Offset: offset, Bytes: chunk[:n]}
			if err := WriteLine(w, line, cfg.Width); err != nil {
				return err
			}
		}
		if err != nil || n == 0 {
			return err
		}
		offset += int64(n)
		if limit > Unbounded {
			limit -= int64(n)
		}
	}
}

// Run opens the source named by cfg.Path, dumps it to w and releases the
// source on every path.
func Run(cfg Config, stdin io.Reader, w io.Writer) (err error) {
	source, err := OpenSource(cfg.Path, stdin)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := source.Close(); closeErr != nil && err == nil {
			err = NewError(KindReadFailed, closeErr)
		}
	}()
	return Dump(source, cfg, w)
}
