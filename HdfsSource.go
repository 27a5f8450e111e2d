// Copyright (c) Microsoft. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.
package multifile

import (
	"github.com/pkg/errors"
)

// Source backed by a file on HDFS, identified as hdfs://namenode:port/path
type hdfsSource struct {
	Url             string
	NameNodeAddress string
	Path            string
	NewAccessor     HdfsAccessorFactory
}

var _ Source = (*hdfsSource)(nil) // ensure hdfsSource implements Source

func NewHdfsSource(url string, nameNodeAddress string, path string, newAccessor HdfsAccessorFactory) Source {
	return &hdfsSource{Url: url, NameNodeAddress: nameNodeAddress, Path: path, NewAccessor: newAccessor}
}

func (this *hdfsSource) Identifier() string {
	return this.Url
}

func (this *hdfsSource) Kind() SourceKind {
	return KindRemote
}

// Returns size of the file as reported by the name node
func (this *hdfsSource) Size() (int64, error) {
	accessor, err := this.NewAccessor(this.NameNodeAddress)
	if err != nil {
		return 0, NewSourceUnavailable(this.Url, errors.Wrap(err, "connect"))
	}
	defer accessor.Close()
	attrs, err := accessor.Stat(this.Path)
	if err != nil {
		return 0, NewSourceUnavailable(this.Url, errors.Wrap(err, "stat"))
	}
	if attrs.IsDir() {
		return 0, NewSourceUnavailable(this.Url, errors.New("is a directory"))
	}
	return int64(attrs.Size), nil
}

// Opens the file for reading. The stream reads over the accessor's connection
// and closes the accessor when it is closed.
func (this *hdfsSource) OpenRead() (ReadSeekCloser, error) {
	accessor, err := this.NewAccessor(this.NameNodeAddress)
	if err != nil {
		return nil, NewSourceUnavailable(this.Url, errors.Wrap(err, "connect"))
	}
	reader, err := accessor.OpenRead(this.Path)
	if err != nil {
		accessor.Close()
		return nil, NewSourceUnavailable(this.Url, errors.Wrap(err, "open"))
	}
	return &hdfsStream{HdfsReader: reader, Accessor: accessor}, nil
}

// Exposes HdfsReader as ReadSeekCloser, HDFS streams have no file descriptor
type hdfsStream struct {
	HdfsReader
	Accessor HdfsAccessor // Owns the connection HdfsReader reads over
}

var _ ReadSeekCloser = (*hdfsStream)(nil) // ensure hdfsStream implements ReadSeekCloser

func (this *hdfsStream) Fileno() int {
	return -1
}

func (this *hdfsStream) Close() error {
	err := this.HdfsReader.Close()
	if closeErr := this.Accessor.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}
