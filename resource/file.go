package resource

import (
	"os"

	"github.com/cockroachdb/errors"

	"github.com/spring-cloud/spring-cloud-deployer-sub001/types"
)

// File is a resource already on the local filesystem, existence is
// checked at construction and nothing else
type File struct {
	path string
}

// NewFile returns pointer of File
func NewFile(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(types.ErrResourceNotFound, "%s", path)
	}
	if info.IsDir() {
		return nil, errors.Wrapf(types.ErrBadResourceURI, "%s is a directory", path)
	}
	return &File{path: path}, nil
}

// URI .
func (f *File) URI() string {
	return "file://" + f.path
}

// Kind .
func (f *File) Kind() string {
	return KindFile
}

// Path .
func (f *File) Path() string {
	return f.path
}
