package dump

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// Source is a sequence of bytes with a current read position. Only sources
// backed by a seeker support Seek.
type Source struct {
	reader io.Reader
	seeker io.Seeker
	closer io.Closer
}

// NewSource wraps r, which is seekable when it implements io.Seeker and is
// closed by Close when it implements io.Closer.
func NewSource(r io.Reader) *Source {
	source := NewStreamSource(r)
	if seeker, ok := r.(io.Seeker); ok {
		source.seeker = seeker
	}
	return source
}

// NewStreamSource wraps r as a forward-only source, whatever r implements.
func NewStreamSource(r io.Reader) *Source {
	source := &Source{reader: r}
	if closer, ok := r.(io.Closer); ok {
		source.closer = closer
	}
	return source
}

// OpenSource opens the file at path, or falls back to stdin when path is
// empty or "-". Standard input is never seekable and is not closed.
func OpenSource(path string, stdin io.Reader) (*Source, error) {
	if path == "" || path == "-" {
		return &Source{reader: stdin}, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, NewError(KindCannotOpen, errors.Wrapf(err, `OpenSource error opening "%s"`, path))
	}
	return NewSource(file), nil
}

func (s *Source) Seekable() bool {
	return s.seeker != nil
}

// SeekTo positions the source at the absolute offset.
func (s *Source) SeekTo(offset int64) error {
	if !s.Seekable() {
		return Errorf(KindNotSeekable, "cannot seek to offset %d in a stream", offset)
	}
	if _, err := s.seeker.Seek(offset, io.SeekStart); err != nil {
		return NewError(KindSeekFailed, errors.Wrapf(err, "SeekTo error seeking to offset %d", offset))
	}
	return nil
}

// ReadChunk fills bs as far as the source allows and returns the number of
// bytes read. Zero means the source is exhausted; end of input is not an
// error. An empty bs still costs one read of the underlying reader.
func (s *Source) ReadChunk(bs []byte) (int, error) {
	n, err := s.reader.Read(bs)
	if err == nil && n > 0 && n < len(bs) {
		// short reads from pipes must not split a line
		var m int
		m, err = io.ReadFull(s.reader, bs[n:])
		n += m
	}
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		err = nil
	}
	if err != nil {
		return n, NewError(KindReadFailed, errors.Wrap(err, "ReadChunk error reading source"))
	}
	return n, nil
}

func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
