// Copyright (c) Microsoft. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.
package multifile

import (
	"io/ioutil"
	"net/http"
	"time"

	"golang.org/x/net/context"
	"gopkg.in/yaml.v3"
)

// Options of MultiSourceReader and SourceResolver
type Options struct {
	Headers        map[string]string `yaml:"headers"`          // Headers sent with every HTTP request
	HttpTimeout    time.Duration     `yaml:"http_timeout"`     // Timeout of HTTP requests, 0 for none
	ProbeCacheSize int               `yaml:"probe_cache_size"` // Remote sizes cached by resolver, 0 disables
	LockLocalFiles bool              `yaml:"lock_local_files"` // Hold shared flock on local files while reading

	HttpClient *http.Client    `yaml:"-"` // Overrides client built from HttpTimeout
	Context    context.Context `yaml:"-"` // Context of HTTP requests
	Resolver   SourceResolver  `yaml:"-"` // Overrides resolver built from these options
}

func DefaultOptions() *Options {
	return &Options{Context: context.Background()}
}

// Reads options from YAML file
func LoadOptions(path string) (*Options, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseOptions(data)
}

// Parses options from YAML document
func ParseOptions(data []byte) (*Options, error) {
	options := DefaultOptions()
	if err := yaml.Unmarshal(data, options); err != nil {
		return nil, err
	}
	return options, nil
}

// Returns HTTP client to use for remote sources
func (this *Options) httpClient() *http.Client {
	if this.HttpClient != nil {
		return this.HttpClient
	}
	return &http.Client{Timeout: this.HttpTimeout}
}

func (this *Options) requestContext() context.Context {
	if this.Context != nil {
		return this.Context
	}
	return context.Background()
}
