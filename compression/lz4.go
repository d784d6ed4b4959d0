package compression

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4/v4"
)

func CompressLz4(src []byte, output *bytes.Buffer) error {
	zw := lz4.NewWriter(output)

	if _, err := zw.Write(src); err != nil {
		return err
	}

	flushErr := zw.Flush()
	if flushErr != nil {
		return flushErr
	}

	return zw.Close()
}

// DecompressLz4 inflates a CompressLz4 payload. sizeHint is the known
// uncompressed size; the result may be shorter if the frame was
// truncated, which callers treat as corruption.
func DecompressLz4(src []byte, sizeHint int) ([]byte, error) {
	zr := lz4.NewReader(bytes.NewReader(src))

	out := bytes.NewBuffer(make([]byte, 0, sizeHint))
	if _, err := io.Copy(out, zr); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}
