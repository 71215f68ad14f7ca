package controllers

import (
	"io"
	"net/http"

	"github.com/luxerealty/luxerealty-backend/api/responses"
	mediasvc "github.com/luxerealty/luxerealty-backend/internal/media"
	pkgerrors "github.com/luxerealty/luxerealty-backend/pkg/errors"
	"github.com/luxerealty/luxerealty-backend/pkg/logger"
)

// Multipart form memory ceiling. Larger files spill to temp disk.
const uploadFormMemory = 8 << 20

// UploadMedia accepts a multipart "file" field and stores it as listing media.
func UploadMedia(svc mediasvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(uploadFormMemory); err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart form"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "file field is required"))
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "read uploaded file"))
			return
		}

		result, err := svc.Upload(r.Context(), mediasvc.UploadInput{
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// DeleteMedia removes a stored listing photo by its object key.
func DeleteMedia(svc mediasvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.Query().Get("key")
		if err := svc.Delete(r.Context(), key); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
