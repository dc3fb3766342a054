package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/document"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
	"github.com/casarosa-rh/hr-backend-go/internal/handler/http/response"
	documentsvc "github.com/casarosa-rh/hr-backend-go/internal/service/document"
)

// uploadMemoryLimit bounds how much of a multipart body is buffered in
// memory before spilling to disk.
const uploadMemoryLimit = 5 << 20

type DocumentHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type DocumentHandlerImpl struct {
	documentService *documentsvc.Service
}

func NewDocumentHandler(documentService *documentsvc.Service) DocumentHandler {
	return &DocumentHandlerImpl{documentService: documentService}
}

func (h *DocumentHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	actor, err := user.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := r.ParseMultipartForm(uploadMemoryLimit); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "File is required", nil)
		return
	}
	defer file.Close()

	req := document.UploadRequest{
		EmployeeUID: r.FormValue("employee_uid"),
		Name:        header.Filename,
		Category:    r.FormValue("category"),
		SizeBytes:   header.Size,
		Content:     file,
	}
	if name := r.FormValue("name"); name != "" {
		req.Name = name
	}

	doc, err := h.documentService.Upload(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Document uploaded", doc)
}

func (h *DocumentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := user.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := document.Filter{
		EmployeeUID: r.URL.Query().Get("employee_uid"),
		Category:    r.URL.Query().Get("category"),
	}

	documents, err := h.documentService.List(r.Context(), actor, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, documents)
}

func (h *DocumentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor, err := user.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	doc, err := h.documentService.Get(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, doc)
}

func (h *DocumentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := user.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.documentService.Delete(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Document deleted", nil)
}
