// Copyright (c) Microsoft. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.
package multifile

import (
	"io"
	"io/ioutil"
	"log"
)

// Library loggers, all silent until InitLogger is called
var Info = log.New(ioutil.Discard, "INFO: ", log.Ldate|log.Ltime)
var Warning = log.New(ioutil.Discard, "Warning: ", log.Lshortfile|log.Ldate|log.Ltime)
var Error = log.New(ioutil.Discard, "Error: ", log.Lshortfile|log.Ldate|log.Ltime)

func InitLogger(info, warning, err io.Writer) {
	Info = log.New(info, "INFO: ", log.Ldate|log.Ltime)
	Warning = log.New(warning, "Warning: ", log.Lshortfile|log.Ldate|log.Ltime)
	Error = log.New(err, "Error: ", log.Lshortfile|log.Ldate|log.Ltime)
}
