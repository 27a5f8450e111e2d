// Copyright (c) Microsoft. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.
package multifile

import (
	"sync/atomic"
)

type ReaderStats struct {
	ReadCount uint64
	SeekCount uint64
	OpenCount uint64
	BytesRead uint64
}

func (this *ReaderStats) IncrementRead(bytes int) {
	if this != nil {
		atomic.AddUint64(&this.ReadCount, 1)
		atomic.AddUint64(&this.BytesRead, uint64(bytes))
	}
}

func (this *ReaderStats) IncrementSeek() {
	if this != nil {
		atomic.AddUint64(&this.SeekCount, 1)
	}
}

func (this *ReaderStats) IncrementOpen() {
	if this != nil {
		atomic.AddUint64(&this.OpenCount, 1)
	}
}
