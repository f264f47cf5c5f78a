// Package document reads and writes JSON documents on a go-billy filesystem,
// converting every failure into a classified *errors.Error.
//
// Failures of the filesystem or the reader become errors.KindIO and malformed
// or unencodable JSON becomes errors.KindParse. The original error is kept in
// both cases, so callers can still test for fs.ErrNotExist or *json.SyntaxError.
package document

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	cwerrors "github.com/Blackfynn/cloudwrap/errors"
)

// FileMode is the permission of files written by Save.
const FileMode os.FileMode = 0o600

// Load reads the named file from fsys and decodes its JSON content into v.
func Load(fsys billy.Basic, name string, v any) error {
	data, err := util.ReadFile(fsys, name)
	if err != nil {
		return cwerrors.FromIO(err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return cwerrors.FromJSON(err)
	}

	return nil
}

// Save encodes v as indented JSON and writes it to the named file on fsys,
// replacing any existing content.
func Save(fsys billy.Basic, name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return cwerrors.FromJSON(err)
	}

	if err := util.WriteFile(fsys, name, append(data, '\n'), FileMode); err != nil {
		return cwerrors.FromIO(err)
	}

	return nil
}

// Decode reads one JSON value from r into v. Only errors produced by r itself
// are I/O failures; everything else the decoder reports, including an empty or
// truncated stream and errors from UnmarshalJSON or UnmarshalText methods, is a
// parse failure.
func Decode(r io.Reader, v any) error {
	src := &recordingReader{r: r}

	err := json.NewDecoder(src).Decode(v)
	if err == nil {
		return nil
	}

	if src.err != nil && errors.Is(err, src.err) {
		return cwerrors.FromIO(err)
	}

	return cwerrors.FromJSON(err)
}

// recordingReader remembers the last error of the underlying reader other
// than io.EOF.
type recordingReader struct {
	r   io.Reader
	err error
}

func (r *recordingReader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if err != nil && err != io.EOF { //nolint:errorlint // io.EOF is returned as is by readers
		r.err = err
	}
	return n, err
}
