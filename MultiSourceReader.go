// Copyright (c) Microsoft. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.
package multifile

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// MultiSourceReader presents an ordered list of sources as one contiguous stream.
// Sizes of all sources are probed once, at construction; streams are opened lazily,
// one at a time, and closed when the reader moves on to the next source.
// Per-source bookkeeping is keyed by position, so the same identifier may appear
// more than once.
// Concurrency: not thread safe: at most on request at a time
type MultiSourceReader struct {
	Id          snowflake.ID   // Unique per reader, reported by String()
	Sources     []Source       // Sources in reading order
	Sizes       []int64        // Size of each source as observed at construction
	Offsets     []int64        // Bytes consumed from each source
	Index       int            // Current source, len(Sources) once exhausted
	Stream      ReadSeekCloser // Open stream of Sources[Index], or nil
	Stats       *ReaderStats   // Read/seek/open counters
	openedIndex int            // Index the current stream was opened for, -1 if none
	closed      bool
}

var _ io.ReadCloser = (*MultiSourceReader)(nil) // ensure MultiSourceReader implements io.ReadCloser
var _ io.WriterTo = (*MultiSourceReader)(nil)   // ensure MultiSourceReader implements io.WriterTo
var _ fmt.Stringer = (*MultiSourceReader)(nil)  // ensure MultiSourceReader implements fmt.Stringer

// Stops Read() from spinning on a stream that keeps returning nothing
const maxConsecutiveEmptyReads = 100

// Chunk size used by WriteTo()
var WRITE_TO_CHUNK_SIZE int = 65536

var readerIdNode *snowflake.Node
var readerIdOnce sync.Once

func nextReaderId() snowflake.ID {
	readerIdOnce.Do(func() {
		// node 0 is always in range
		readerIdNode, _ = snowflake.NewNode(0)
	})
	return readerIdNode.Generate()
}

// Creates reader over a single source
func NewSingleSourceReader(identifier string, options *Options) (*MultiSourceReader, error) {
	return NewMultiSourceReader([]string{identifier}, options)
}

// Creates reader over the given sources, probing size of each of them in order.
// The first failed probe is returned and no reader is created.
// Options may be nil.
func NewMultiSourceReader(identifiers []string, options *Options) (*MultiSourceReader, error) {
	if options == nil {
		options = DefaultOptions()
	}
	resolver := options.Resolver
	if resolver == nil {
		var err error
		resolver, err = NewSourceResolver(options)
		if err != nil {
			return nil, err
		}
	}

	sources := make([]Source, len(identifiers))
	sizes := make([]int64, len(identifiers))
	for i, identifier := range identifiers {
		sources[i] = resolver.Resolve(identifier)
		size, err := sources[i].Size()
		if err != nil {
			return nil, err
		}
		sizes[i] = size
	}

	this := &MultiSourceReader{
		Id:          nextReaderId(),
		Sources:     sources,
		Sizes:       sizes,
		Offsets:     make([]int64, len(identifiers)),
		Stats:       &ReaderStats{},
		openedIndex: -1}
	runtime.SetFinalizer(this, (*MultiSourceReader).finalize)
	Info.Printf("MultiSourceReader[%s]: %d sources, %s total", this.Id, len(sources), humanize.Bytes(uint64(this.TotalSize())))
	return this, nil
}

// Returns combined size of all sources in bytes
func (this *MultiSourceReader) TotalSize() int64 {
	var total int64
	for _, size := range this.Sizes {
		total += size
	}
	return total
}

// Same as TotalSize()
func (this *MultiSourceReader) GetSize() int64 {
	return this.TotalSize()
}

// Returns number of bytes not yet consumed
func (this *MultiSourceReader) Remaining() int64 {
	remaining := this.TotalSize()
	for _, offset := range this.Offsets {
		remaining -= offset
	}
	return remaining
}

// Describes reader progress, e.g. "MultiSourceReader[1585...]: 7 B of 12 B read from 3 sources"
func (this *MultiSourceReader) String() string {
	total := this.TotalSize()
	return fmt.Sprintf("MultiSourceReader[%s]: %s of %s read from %d sources", this.Id,
		humanize.Bytes(uint64(total-this.Remaining())), humanize.Bytes(uint64(total)), len(this.Sources))
}

// Returns identifiers of all sources in reading order
func (this *MultiSourceReader) Identifiers() []string {
	identifiers := make([]string, len(this.Sources))
	for i, source := range this.Sources {
		identifiers[i] = source.Identifier()
	}
	return identifiers
}

// Returns identifier of the source being read.
// False if reader is exhausted or no stream was opened for the current source yet.
func (this *MultiSourceReader) CurrentIdentifier() (string, bool) {
	if this.Index >= len(this.Sources) || this.openedIndex != this.Index {
		return "", false
	}
	return this.Sources[this.Index].Identifier(), true
}

// Returns identifier of the source being read, or "" (see CurrentIdentifier)
func (this *MultiSourceReader) Filename() string {
	identifier, _ := this.CurrentIdentifier()
	return identifier
}

// Closes current stream (if any) and opens the next source.
// The first call opens the first source. Once all sources are passed this is a no-op.
func (this *MultiSourceReader) Advance() error {
	if this.closed {
		return os.ErrClosed
	}
	if this.Stream != nil {
		err := this.Stream.Close()
		if err != nil {
			Error.Printf("MultiSourceReader[%s]: closing %s: %s", this.Id, this.Sources[this.Index].Identifier(), err)
		}
		this.Stream = nil
		this.Index++
	}
	if this.Index >= len(this.Sources) {
		return nil
	}
	source := this.Sources[this.Index]
	stream, err := source.OpenRead()
	if err != nil {
		return err
	}
	this.Stats.IncrementOpen()
	this.Stream = stream
	this.openedIndex = this.Index
	Info.Printf("MultiSourceReader[%s]: reading %s source #%d %s (%s)", this.Id, source.Kind(), this.Index, source.Identifier(), humanize.Bytes(uint64(this.Sizes[this.Index])))
	return nil
}

// Reads up to size bytes, crossing source boundaries as needed.
// size <= 0 reads everything that is left. A result shorter than requested
// means the reader is exhausted; an empty result with nil error is end of stream.
func (this *MultiSourceReader) ReadBytes(size int64) ([]byte, error) {
	if this.closed {
		return nil, os.ErrClosed
	}
	if size <= 0 {
		size = this.TotalSize()
	}
	if remaining := this.Remaining(); size > remaining {
		size = remaining
	}
	buffer := make([]byte, size)
	nr, err := this.fill(buffer)
	return buffer[:nr], err
}

// Implements io.Reader, returns io.EOF once all sources are exhausted
func (this *MultiSourceReader) Read(buffer []byte) (int, error) {
	if this.closed {
		return 0, os.ErrClosed
	}
	if len(buffer) == 0 {
		return 0, nil
	}
	nr, err := this.fill(buffer)
	if nr == 0 && err == nil {
		return 0, io.EOF
	}
	return nr, err
}

// Copies remaining content of all sources to the writer
func (this *MultiSourceReader) WriteTo(writer io.Writer) (int64, error) {
	buffer := make([]byte, WRITE_TO_CHUNK_SIZE)
	var total int64
	for {
		nr, err := this.Read(buffer)
		if nr > 0 {
			nw, werr := writer.Write(buffer[:nr])
			total += int64(nw)
			if werr != nil {
				return total, werr
			}
			if nw != nr {
				return total, io.ErrShortWrite
			}
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// Fills the buffer from current and subsequent sources until it is full or
// all sources are exhausted
func (this *MultiSourceReader) fill(buffer []byte) (int, error) {
	total := 0
	emptyReads := 0
	for total < len(buffer) {
		if this.Stream == nil && this.Index >= len(this.Sources) {
			break
		}
		if this.Stream == nil || this.Offsets[this.Index] == this.Sizes[this.Index] {
			if err := this.Advance(); err != nil {
				return total, err
			}
			continue
		}
		nr, err := this.readFromCurrent(buffer[total:])
		total += nr
		if err != nil {
			return total, err
		}
		if nr == 0 {
			emptyReads++
			if emptyReads >= maxConsecutiveEmptyReads {
				return total, io.ErrNoProgress
			}
		} else {
			emptyReads = 0
		}
	}
	return total, nil
}

// Reads a chunk from the current source, never past its size observed at construction
func (this *MultiSourceReader) readFromCurrent(buffer []byte) (int, error) {
	source := this.Sources[this.Index]
	offset := this.Offsets[this.Index]
	unread := this.Sizes[this.Index] - offset
	length := int64(len(buffer))
	if length > unread {
		length = unread
	}

	// Streams are positioned explicitly, so the handle's own position can't drift
	if err := this.Stream.Seek(offset); err != nil {
		return 0, sourceError(source, err)
	}
	this.Stats.IncrementSeek()

	nr, err := this.Stream.Read(buffer[:length])
	this.Offsets[this.Index] += int64(nr)
	this.Stats.IncrementRead(nr)
	if err == io.EOF {
		if nr == 0 {
			return 0, NewSourceUnavailable(source.Identifier(),
				errors.Wrapf(io.ErrUnexpectedEOF, "ended at %d of %d bytes", offset, this.Sizes[this.Index]))
		}
		err = nil
	}
	return nr, sourceError(source, err)
}

// Attaches identifier to failures of remote sources.
// Filesystem errors already name the path and are returned as is.
func sourceError(source Source, err error) error {
	if err == nil || source.Kind() != KindRemote || IsSourceUnavailable(err) {
		return err
	}
	return NewSourceUnavailable(source.Identifier(), err)
}

// Returns native file descriptor of the current stream, -1 if there is none
func (this *MultiSourceReader) Fileno() int {
	if this.Stream == nil {
		return -1
	}
	return this.Stream.Fileno()
}

// Closes current stream and releases the reader. A closed reader can't be reused:
// Read(), ReadBytes() and Advance() fail with os.ErrClosed afterwards.
// Safe to call any number of times.
func (this *MultiSourceReader) Close() error {
	var err error
	if this.Stream != nil {
		err = this.Stream.Close()
		this.Stream = nil
	}
	this.Index = 0
	this.openedIndex = -1
	if !this.closed {
		this.closed = true
		runtime.SetFinalizer(this, nil)
		Info.Printf("%s, closed after %d reads and %d opens", this, this.Stats.ReadCount, this.Stats.OpenCount)
	}
	return err
}

// Last resort for readers nobody closed
func (this *MultiSourceReader) finalize() {
	if this.Stream != nil {
		Warning.Printf("MultiSourceReader[%s]: garbage collected without Close()", this.Id)
	}
	this.Close()
}
