package middleware

import (
	"fmt"
	"net/http"

	"github.com/klauspost/compress/gzhttp"
	"github.com/klauspost/compress/gzip"
)

// compressMinSize is the smallest body worth compressing. Health probes
// and short problem responses stay uncompressed.
const compressMinSize = 512

// Compression returns middleware that gzips responses for clients sending
// Accept-Encoding: gzip. Rendered roll markup and batch results compress
// well; bodies under compressMinSize are passed through.
func Compression() (func(http.Handler) http.Handler, error) {
	wrap, err := gzhttp.NewWrapper(
		gzhttp.MinSize(compressMinSize),
		gzhttp.CompressionLevel(gzip.DefaultCompression),
	)
	if err != nil {
		return nil, fmt.Errorf("building gzip wrapper: %w", err)
	}
	return func(next http.Handler) http.Handler {
		return wrap(next)
	}, nil
}
