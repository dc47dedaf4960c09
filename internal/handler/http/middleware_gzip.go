package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var gzipWriterPool = sync.Pool{
	New: func() any {
		w := gzip.NewWriter(nil)
		return w
	},
}

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZip decompresses gzip request bodies and compresses response bodies
// for clients that accept gzip. Responses without a body are left as is.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		supportsGzip := strings.Contains(req.Header.Get("Accept-Encoding"), "gzip")
		isGzipRequest := strings.Contains(req.Header.Get("Content-Encoding"), "gzip")

		if isGzipRequest && req.Body != nil {
			gzipReader := gzipReaderPool.Get().(*gzip.Reader)
			if err := gzipReader.Reset(req.Body); err != nil {
				gzipReaderPool.Put(gzipReader)
				http.Error(w, "Invalid gzip data", http.StatusBadRequest)
				return
			}

			req.Body = &wrappedReadCloser{
				Reader: gzipReader,
				OnClose: func() {
					gzipReader.Close()
					gzipReaderPool.Put(gzipReader)
				},
			}
			req.Header.Del("Content-Encoding")
			req.ContentLength = -1
		}

		if !supportsGzip {
			next.ServeHTTP(w, req)
			return
		}

		gzipWriter := gzipWriterPool.Get().(*gzip.Writer)
		gzipWriter.Reset(w)

		gzipRW := &gzipResponseWriter{
			ResponseWriter: w,
			gzipWriter:     gzipWriter,
		}
		defer func() {
			gzipRW.finish()
			gzipWriterPool.Put(gzipWriter)
		}()

		next.ServeHTTP(gzipRW, req)
	})
}

type wrappedReadCloser struct {
	io.Reader
	OnClose func()
}

func (w *wrappedReadCloser) Close() error {
	if w.OnClose != nil {
		w.OnClose()
	}
	return nil
}

// gzipResponseWriter holds the status back until the first body write, so
// the encoding headers are only sent for responses that have a body.
type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter *gzip.Writer

	status     int
	headerSent bool
	compressed bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.headerSent || w.status != 0 {
		return
	}
	w.status = statusCode
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.headerSent {
		w.sendHeader(true)
	}
	return w.gzipWriter.Write(data)
}

func (w *gzipResponseWriter) sendHeader(compressed bool) {
	w.headerSent = true
	w.compressed = compressed

	if compressed {
		h := w.Header()
		h.Set("Content-Encoding", "gzip")
		h.Add("Vary", "Accept-Encoding")
		h.Del("Content-Length")
	}

	status := w.status
	if status == 0 {
		status = http.StatusOK
	}
	w.ResponseWriter.WriteHeader(status)
}

// finish flushes the gzip stream, or only the held back status when nothing
// was written.
func (w *gzipResponseWriter) finish() error {
	if !w.headerSent {
		if w.status != 0 {
			w.sendHeader(false)
		}
		w.gzipWriter.Reset(io.Discard)
		return nil
	}
	if !w.compressed {
		return nil
	}
	return w.gzipWriter.Close()
}

// Unwrap exposes the wrapped writer to [http.ResponseController].
func (w *gzipResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
