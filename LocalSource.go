// Copyright (c) Microsoft. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.
package multifile

import (
	"io"
	"os"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
)

var ErrLocked = errors.New("file is locked by another process")

// Source backed by a file on the local filesystem.
// Filesystem errors are returned as is (*os.PathError)
type localSource struct {
	Path     string // Passed to the filesystem unmodified
	LockFile bool   // Hold a shared advisory lock while the file is open
}

var _ Source = (*localSource)(nil) // ensure localSource implements Source

func NewLocalSource(path string, lockFile bool) Source {
	return &localSource{Path: path, LockFile: lockFile}
}

func (this *localSource) Identifier() string {
	return this.Path
}

func (this *localSource) Kind() SourceKind {
	return KindLocal
}

// Returns size of the file at the time of the call
func (this *localSource) Size() (int64, error) {
	fi, err := os.Stat(this.Path)
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}

// Opens the file for sequential binary reading
func (this *localSource) OpenRead() (ReadSeekCloser, error) {
	var lock *flock.Flock
	if this.LockFile {
		lock = flock.New(this.Path)
		locked, err := lock.TryRLock()
		if err != nil {
			return nil, err
		}
		if !locked {
			return nil, &os.PathError{Op: "lock", Path: this.Path, Err: ErrLocked}
		}
	}
	file, err := os.Open(this.Path)
	if err != nil {
		if lock != nil {
			lock.Unlock()
		}
		return nil, err
	}
	return &localStream{File: file, Lock: lock}, nil
}

// Wraps *os.File exposing it as ReadSeekCloser
type localStream struct {
	File *os.File
	Lock *flock.Flock // nil unless locking was requested
}

var _ ReadSeekCloser = (*localStream)(nil) // ensure localStream implements ReadSeekCloser

func (this *localStream) Read(buffer []byte) (int, error) {
	return this.File.Read(buffer)
}

func (this *localStream) Seek(pos int64) error {
	actualPos, err := this.File.Seek(pos, io.SeekStart)
	if err != nil {
		return err
	}
	if pos != actualPos {
		return errors.Errorf("%s: can't seek to %d, got %d", this.File.Name(), pos, actualPos)
	}
	return nil
}

func (this *localStream) Position() (int64, error) {
	return this.File.Seek(0, io.SeekCurrent)
}

// Returns OS file descriptor, -1 once the file is closed
func (this *localStream) Fileno() int {
	fd := this.File.Fd()
	if fd == ^uintptr(0) {
		return -1
	}
	return int(fd)
}

func (this *localStream) Close() error {
	err := this.File.Close()
	if this.Lock != nil {
		if unlockErr := this.Lock.Unlock(); unlockErr != nil && err == nil {
			err = unlockErr
		}
	}
	return err
}
