package handlers

import (
	"bytes"
	"io"
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"github.com/employee7007-droid/construct-deal/internal/storage"
	"github.com/employee7007-droid/construct-deal/pkg/logger"
)

// readUpload buffers the uploaded file and, when staging is configured, keeps
// a copy in MinIO under "<resource>/<id>/<filename>" so download links can be
// served without another trip to the backend. Staging is best effort; the
// upstream upload is what matters.
func readUpload(c *gin.Context, attachments *storage.AttachmentStore, resource, id string, file multipart.File, filename string) (io.Reader, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		return nil, err
	}
	if attachments != nil {
		key := storage.Key(resource, id, filename)
		contentType := c.GetHeader("Content-Type")
		if err := attachments.Stage(c.Request.Context(), key, bytes.NewReader(buf.Bytes()), int64(buf.Len()), contentType); err != nil {
			logger.Warnf("stage attachment %s: %v", key, err)
		}
	}
	return &buf, nil
}
