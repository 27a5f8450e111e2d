// Copyright (c) Microsoft. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.
package multifile

import (
	"io"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/net/context"
	"golang.org/x/net/context/ctxhttp"
)

// Source backed by a resource reachable with HTTP GET.
// Both the size probe and the stream use the same request; the probe closes
// the body without reading it.
type httpSource struct {
	Url     string
	Client  *http.Client      // Follows redirects unless configured otherwise
	Headers map[string]string // Extra request headers (e.g. auth tokens)
	Context context.Context
}

var _ Source = (*httpSource)(nil) // ensure httpSource implements Source

func NewHttpSource(ctx context.Context, client *http.Client, url string, headers map[string]string) Source {
	return &httpSource{Url: url, Client: client, Headers: headers, Context: ctx}
}

func (this *httpSource) Identifier() string {
	return this.Url
}

func (this *httpSource) Kind() SourceKind {
	return KindRemote
}

// Returns declared Content-Length of the resource
func (this *httpSource) Size() (int64, error) {
	resp, err := this.get()
	if err != nil {
		return 0, err
	}
	resp.Body.Close()

	contentLength := resp.Header.Get("Content-Length")
	if contentLength == "" {
		return 0, NewSourceUnavailable(this.Url, errors.New("response has no Content-Length"))
	}
	size, err := strconv.ParseInt(contentLength, 10, 64)
	if err != nil || size < 0 {
		return 0, NewSourceUnavailable(this.Url, errors.Errorf("invalid Content-Length %q", contentLength))
	}
	return size, nil
}

// Opens streaming read channel to the body of the resource
func (this *httpSource) OpenRead() (ReadSeekCloser, error) {
	resp, err := this.get()
	if err != nil {
		return nil, err
	}
	return &httpStream{Url: this.Url, Body: resp.Body}, nil
}

// Issues GET request, returns response with unread body if status is 2xx
func (this *httpSource) get() (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, this.Url, nil)
	if err != nil {
		return nil, NewSourceUnavailable(this.Url, err)
	}
	for name, value := range this.Headers {
		req.Header.Set(name, value)
	}
	// Content is opaque: asking for identity encoding keeps the transport from gunzipping it
	if req.Header.Get("Accept-Encoding") == "" {
		req.Header.Set("Accept-Encoding", "identity")
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", UserAgent())
	}
	resp, err := ctxhttp.Do(this.Context, this.Client, req)
	if err != nil {
		return nil, NewSourceUnavailable(this.Url, errors.Wrap(err, "GET failed"))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, NewSourceUnavailable(this.Url, errors.Errorf("unexpected HTTP status %s", resp.Status))
	}
	return resp, nil
}

// Forward-only stream over the response body
type httpStream struct {
	Url      string
	Body     io.ReadCloser
	position int64
}

var _ ReadSeekCloser = (*httpStream)(nil) // ensure httpStream implements ReadSeekCloser

func (this *httpStream) Read(buffer []byte) (int, error) {
	nr, err := this.Body.Read(buffer)
	this.position += int64(nr)
	return nr, err
}

// Only seeking to the current position is supported
func (this *httpStream) Seek(pos int64) error {
	if pos != this.position {
		return errors.Errorf("%s: can't seek HTTP stream from %d to %d", this.Url, this.position, pos)
	}
	return nil
}

func (this *httpStream) Position() (int64, error) {
	return this.position, nil
}

func (this *httpStream) Fileno() int {
	return -1
}

func (this *httpStream) Close() error {
	return this.Body.Close()
}
