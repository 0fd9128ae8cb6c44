package types

import (
	"path/filepath"
	"strings"
)

// FileTask is a discovered file considered during one sort run
type FileTask struct {
	Path string `json:"path"`
	Name string `json:"name"`
	// Ext is the last dot-segment of Name, lower-cased, for reporting only
	Ext  string `json:"ext"`
	Size int64  `json:"size"`
}

// NewFileTask builds a FileTask from a full path and a size in bytes
func NewFileTask(path string, size int64) FileTask {
	name := filepath.Base(path)
	return FileTask{
		Path: path,
		Name: name,
		Ext:  strings.ToLower(filepath.Ext(name)),
		Size: size,
	}
}
