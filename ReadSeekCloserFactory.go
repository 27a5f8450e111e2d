// Copyright (c) Microsoft. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.
package multifile

//go:generate mockgen -source=ReadSeekCloserFactory.go -destination=MockSource_test.go -package=multifile

// Interface to open a file for reading (create instance of ReadSeekCloser)
type ReadSeekCloserFactory interface {
	OpenRead() (ReadSeekCloser, error) // Opens a file to read with ReadSeekCloser interface
}

// Kind of the source, derived from the syntax of its identifier
type SourceKind int

const (
	KindLocal  SourceKind = iota // path on the local filesystem
	KindRemote                   // URL with both scheme and host
)

func (this SourceKind) String() string {
	switch this {
	case KindLocal:
		return "local"
	case KindRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// One resolved element of the combined stream.
// Size() must never leave an open stream behind.
type Source interface {
	ReadSeekCloserFactory
	Identifier() string   // Identifier the source was resolved from
	Kind() SourceKind     // Local or remote
	Size() (int64, error) // Probes current size of the source in bytes
}
