package shader

import (
	"io"
	"os"
)

const (
	errNotRegular   constErr = "not a regular file"
	errSizeMismatch constErr = "file longer than its reported size"
)

// Source is an owned, NUL-terminated copy of a shader source file.
// A Source has exactly one owner; pass the pointer to hand it over and call
// Release when done.
type Source struct {
	data []byte
}

// LoadSource reads the file at path into a new Source.
//
// The returned buffer holds the file's bytes followed by a single NUL.
// Open failures match ErrFileOpen, short or failed reads match ErrFileRead;
// in both cases no Source is returned. The file is always closed before
// LoadSource returns.
func LoadSource(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, &LoadError{Op: "read", Path: path, Err: err}
	}

	if !info.Mode().IsRegular() {
		return nil, &LoadError{Op: "read", Path: path, Err: errNotRegular}
	}

	size := info.Size()
	data := make([]byte, size+1)
	if _, err := io.ReadFull(f, data[:size]); err != nil {
		return nil, &LoadError{Op: "read", Path: path, Err: err}
	}

	// The file must end where Stat said it does.
	if n, err := f.Read(data[size:]); n != 0 || err != io.EOF {
		if err == nil || err == io.EOF {
			err = errSizeMismatch
		}
		return nil, &LoadError{Op: "read", Path: path, Err: err}
	}
	data[size] = 0

	return &Source{data: data}, nil
}

// Bytes returns the buffer including the trailing NUL.
// The slice is owned by the Source and is invalid after Release.
func (s *Source) Bytes() []byte {
	if s == nil {
		return nil
	}
	return s.data
}

// Text returns the file contents without the terminator.
func (s *Source) Text() string {
	if s == nil || len(s.data) == 0 {
		return ""
	}
	return string(s.data[:len(s.data)-1])
}

// CString returns the contents including the terminator, in the form
// C-string helpers such as gl.Strs expect.
func (s *Source) CString() string {
	if s == nil {
		return ""
	}
	return string(s.data)
}

// Len returns the buffer length: file size plus one.
func (s *Source) Len() int {
	if s == nil {
		return 0
	}
	return len(s.data)
}

// Released reports whether the buffer has been freed.
func (s *Source) Released() bool {
	return s == nil || s.data == nil
}

// Release frees the buffer. It is safe to call more than once.
func (s *Source) Release() {
	if s == nil {
		return
	}
	s.data = nil
}
