// Copyright (c) Microsoft. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.
package multifile

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/context"
)

// Turns source identifiers into Sources
// Concurrency: thread safe
type SourceResolver interface {
	Classify(identifier string) SourceKind // Local or remote, never fails
	Resolve(identifier string) Source      // Creates Source, no I/O happens here
}

type sourceResolverImpl struct {
	Headers        map[string]string
	HttpClient     *http.Client
	Context        context.Context
	LockLocalFiles bool
	SizeCache      *SizeCache
	NewHdfsAccess  HdfsAccessorFactory
}

var _ SourceResolver = (*sourceResolverImpl)(nil) // ensure sourceResolverImpl implements SourceResolver

// Creates SourceResolver configured by options.
// Readers sharing a resolver share its size cache.
func NewSourceResolver(options *Options) (SourceResolver, error) {
	if options == nil {
		options = DefaultOptions()
	}
	sizeCache, err := NewSizeCache(options.ProbeCacheSize)
	if err != nil {
		return nil, err
	}
	return &sourceResolverImpl{
		Headers:        options.Headers,
		HttpClient:     options.httpClient(),
		Context:        options.requestContext(),
		LockLocalFiles: options.LockLocalFiles,
		SizeCache:      sizeCache,
		NewHdfsAccess:  NewHdfsAccessor}, nil
}

// Returns true if identifier parses as URL with both scheme and host
func IsUrl(identifier string) bool {
	u, err := url.Parse(identifier)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// Classifies identifier, malformed URLs are treated as local paths
func Classify(identifier string) SourceKind {
	if IsUrl(identifier) {
		return KindRemote
	}
	return KindLocal
}

func (this *sourceResolverImpl) Classify(identifier string) SourceKind {
	return Classify(identifier)
}

func (this *sourceResolverImpl) Resolve(identifier string) Source {
	if this.Classify(identifier) == KindLocal {
		return NewLocalSource(identifier, this.LockLocalFiles)
	}
	u, _ := url.Parse(identifier)
	var source Source
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		source = NewHttpSource(this.Context, this.HttpClient, identifier, this.Headers)
	case "hdfs":
		source = NewHdfsSource(identifier, u.Host, u.Path, this.NewHdfsAccess)
	default:
		source = &unsupportedSource{Url: identifier, Scheme: u.Scheme}
	}
	if this.SizeCache != nil {
		return &cachingSource{Source: source, SizeCache: this.SizeCache}
	}
	return source
}

// Remote source with a scheme nobody knows how to fetch
type unsupportedSource struct {
	Url    string
	Scheme string
}

var _ Source = (*unsupportedSource)(nil) // ensure unsupportedSource implements Source

func (this *unsupportedSource) Identifier() string { return this.Url }

func (this *unsupportedSource) Kind() SourceKind { return KindRemote }

func (this *unsupportedSource) Size() (int64, error) {
	return 0, NewSourceUnavailable(this.Url, errors.Errorf("unsupported scheme %q", this.Scheme))
}

func (this *unsupportedSource) OpenRead() (ReadSeekCloser, error) {
	return nil, NewSourceUnavailable(this.Url, errors.Errorf("unsupported scheme %q", this.Scheme))
}
