package utils

import (
	"io"
	"mime/multipart"

	"coursedesk/platform"
)

// OpenUploads opens the given multipart files so they can be streamed to the
// platform. The returned func closes them all and is safe to call when err
// is non-nil.
func OpenUploads(files map[string]*multipart.FileHeader) (map[string]*platform.Upload, func(), error) {
	uploads := make(map[string]*platform.Upload, len(files))
	var closers []io.Closer
	closeAll := func() {
		for _, cl := range closers {
			cl.Close()
		}
	}

	for field, header := range files {
		if header == nil {
			continue
		}
		upload, closer, err := OpenUpload(header)
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		closers = append(closers, closer)
		uploads[field] = upload
	}
	return uploads, closeAll, nil
}

func OpenUpload(header *multipart.FileHeader) (*platform.Upload, io.Closer, error) {
	src, err := header.Open()
	if err != nil {
		return nil, nil, err
	}
	return &platform.Upload{FileName: header.Filename, Reader: src}, src, nil
}
