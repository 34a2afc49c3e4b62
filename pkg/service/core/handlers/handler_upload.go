package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/caseboard/caseboard-backend/pkg/errs"
	"github.com/caseboard/caseboard-backend/pkg/service"
	"github.com/google/uuid"
)

// maxUploadMemory bounds how much of the multipart form is held in
// memory, the remainder spills to temporary files.
const maxUploadMemory = 32 << 20

type UploadHandler struct {
	uploadService service.UploadService
}

func (h *UploadHandler) Upload(ctx context.Context, r *http.Request, _ any) (*service.Created[service.EmptyMeta, *service.UploadResult], error) {
	const op errs.Op = "UploadHandler.Upload"

	user, err := userFromContext(ctx)
	if err != nil {
		return nil, errs.E(op, err)
	}

	err = r.ParseMultipartForm(maxUploadMemory)
	if err != nil {
		return nil, errs.E(errs.InvalidRequest, op, fmt.Errorf("parse multipart form: %w", err))
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, errs.E(errs.InvalidRequest, op, errs.Parameter("file"), fmt.Errorf("missing file: %w", err))
	}
	defer file.Close()

	in := &service.UploadRequest{
		Filename: header.Filename,
		Name:     r.FormValue("name"),
		File:     file,
	}

	if raw := r.FormValue("sketch_id"); raw != "" {
		sketchID, err := uuid.Parse(raw)
		if err != nil {
			return nil, errs.E(errs.InvalidRequest, op, errs.Parameter("sketch_id"), fmt.Errorf("parsing sketch_id: %w", err))
		}
		in.SketchID = &sketchID
	}

	result, err := h.uploadService.Upload(ctx, user, in)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return result, nil
}

func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}
