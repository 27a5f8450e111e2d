// Copyright (c) Microsoft. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.
package multifile

//go:generate mockgen -source=HdfsAccessor.go -destination=MockHdfsAccessor_test.go -package=multifile

import (
	"sync"

	"github.com/colinmarc/hdfs"
)

// Interface for accessing HDFS
// Concurrency: thread safe: handles unlimited number of concurrent requests
type HdfsAccessor interface {
	OpenRead(path string) (HdfsReader, error) // Opens HDFS file for reading
	Stat(path string) (Attrs, error)          // retrieves file/directory attributes
	Close() error                             // Closes metadata connection
}

// Creates HdfsAccessor for the given name node address (host:port)
type HdfsAccessorFactory func(nameNodeAddress string) (HdfsAccessor, error)

type hdfsAccessorImpl struct {
	NameNodeAddress     string       // Address:port of the name node
	MetadataClient      *hdfs.Client // HDFS client shared by metadata operations and opened readers
	MetadataClientMutex sync.Mutex   // Serializing all metadata operations for simplicity
}

var _ HdfsAccessor = (*hdfsAccessorImpl)(nil) // ensure hdfsAccessorImpl implements HdfsAccessor

// Creates an instance of HdfsAccessor
func NewHdfsAccessor(nameNodeAddress string) (HdfsAccessor, error) {
	client, err := hdfs.New(nameNodeAddress)
	if err != nil {
		return nil, err
	}
	return &hdfsAccessorImpl{NameNodeAddress: nameNodeAddress, MetadataClient: client}, nil
}

// Opens HDFS file for reading over the accessor's connection,
// the accessor must stay open while the reader is in use
func (this *hdfsAccessorImpl) OpenRead(path string) (HdfsReader, error) {
	this.MetadataClientMutex.Lock()
	defer this.MetadataClientMutex.Unlock()

	reader, err := this.MetadataClient.Open(path)
	if err != nil {
		return nil, err
	}
	return NewHdfsReader(reader), nil
}

// retrieves file/directory attributes
func (this *hdfsAccessorImpl) Stat(path string) (Attrs, error) {
	this.MetadataClientMutex.Lock()
	defer this.MetadataClientMutex.Unlock()

	fi, err := this.MetadataClient.Stat(path)
	if err != nil {
		return Attrs{}, err
	}
	return AttrsFromFileInfo(fi), nil
}

func (this *hdfsAccessorImpl) Close() error {
	this.MetadataClientMutex.Lock()
	defer this.MetadataClientMutex.Unlock()
	return this.MetadataClient.Close()
}
