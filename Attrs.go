// Copyright (c) Microsoft. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.
package multifile

import (
	"os"
	"time"
)

// Attributes of a file on HDFS
type Attrs struct {
	Name  string
	Mode  os.FileMode
	Size  uint64
	Mtime time.Time
}

// Converts os.FileInfo returned by the HDFS client into Attrs
func AttrsFromFileInfo(fi os.FileInfo) Attrs {
	return Attrs{
		Name:  fi.Name(),
		Mode:  fi.Mode(),
		Size:  uint64(fi.Size()),
		Mtime: fi.ModTime()}
}

// Returns true if attributes describe a directory
func (this *Attrs) IsDir() bool {
	return (this.Mode & os.ModeDir) == os.ModeDir
}
