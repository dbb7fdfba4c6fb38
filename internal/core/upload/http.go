// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package upload

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/beacon/internal/platform/apperr"
	"github.com/taibuivan/beacon/internal/platform/constants"
	requestutil "github.com/taibuivan/beacon/internal/platform/request"
	"github.com/taibuivan/beacon/internal/platform/respond"
)

// multipartOverhead leaves room for form boundaries and other fields.
const multipartOverhead = 1 << 20

// Handler serves the upload endpoints.
type Handler struct {
	service *Service
}

// NewHandler creates a Handler backed by service.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// AdminRoutes mounts the admin endpoints.
func (handler *Handler) AdminRoutes(router chi.Router) {
	router.Post("/replace/{entity}", handler.replace)
	router.Post("/{entity}", handler.upload)
	router.Delete("/", handler.delete)
}

/*
POST /api/admin/upload/{entity}

Multipart field "image" carries the file.

Response:
  - 201: [File]
*/
func (handler *Handler) upload(writer http.ResponseWriter, request *http.Request) {
	file, header, err := handler.formFile(writer, request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	defer file.Close()

	stored, err := handler.service.Save(request.Context(), requestutil.Param(request, "entity"), header.Filename, file, header.Size)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, "File uploaded successfully", stored)
}

/*
POST /api/admin/upload/replace/{entity}

Multipart fields: "image" and "old_url".
*/
func (handler *Handler) replace(writer http.ResponseWriter, request *http.Request) {
	file, header, err := handler.formFile(writer, request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	defer file.Close()

	stored, err := handler.service.Replace(request.Context(),
		requestutil.Param(request, "entity"),
		request.FormValue("old_url"),
		header.Filename, file, header.Size,
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, "File replaced successfully", stored)
}

/*
DELETE /api/admin/upload

Request body: {"url": "..."}
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	var body struct {
		URL string `json:"url" validate:"required"`
	}
	if err := requestutil.Decode(writer, request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), body.URL); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "File deleted successfully", nil)
}

func (handler *Handler) formFile(writer http.ResponseWriter, request *http.Request) (multipart.File, *multipart.FileHeader, error) {
	request.Body = http.MaxBytesReader(writer, request.Body, handler.service.maxSize+multipartOverhead)

	if err := request.ParseMultipartForm(handler.service.maxSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, nil, handler.service.tooLarge()
		}
		return nil, nil, apperr.BadRequest("Invalid multipart form")
	}

	file, header, err := request.FormFile(constants.UploadFormField)
	if err != nil {
		return nil, nil, apperr.BadRequest("No file uploaded")
	}
	return file, header, nil
}
