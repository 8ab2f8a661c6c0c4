package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dravedigitals/careerguard/server/service"
	"github.com/go-chi/chi/v5"
)

type FilesHandler struct {
	Storage service.Storage
}

// Serve streams a stored upload. Content type is resolved from the stored
// name's extension when the backend does not record one, falling back to
// generic binary. Files are served inline.
func (h *FilesHandler) Serve(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	body, contentType, err := h.Storage.Open(r.Context(), filename)
	if err != nil {
		if errors.Is(err, service.ErrFileNotFound) {
			writeMessage(w, http.StatusNotFound, "File not found")
			return
		}
		writeServerError(w, err)
		return
	}
	defer body.Close()

	if contentType == "" {
		contentType = service.MimeTypeByExtension(filename)
	}
	safe := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(filename)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, safe))
	io.Copy(w, body)
}
