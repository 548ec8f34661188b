// internal/api/http/assets.go
package http

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mind-engage/netdefense-quiz/internal/storage"
)

// MountStatic serves raw blobs read-only, mirroring the on-disk db folder.
func MountStatic(r chi.Router, bs storage.BlobStore, log *zap.Logger) {
	// GET /db/*   -> returns the blob at whatever follows /db/
	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "*")        // everything after the mount point
		key = strings.TrimPrefix(key, "/") // normalize
		rc, err := bs.Get(r.Context(), key)
		if err != nil {
			if !errors.Is(err, storage.ErrNotFound) {
				log.Warn("static get", zap.String("key", key), zap.Error(err))
			}
			writeDetail(w, http.StatusNotFound, "Not Found")
			return
		}
		defer rc.Close()
		ct := mime.TypeByExtension(path.Ext(key))
		if ct == "" {
			ct = "application/octet-stream"
		}
		w.Header().Set("Content-Type", ct)
		_, _ = io.Copy(w, rc)
	})
}
