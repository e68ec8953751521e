package handler

type createDocumentRequest struct {
	Title   string `json:"title"   validate:"required,min=1,max=255"`
	Content string `json:"content" validate:"required"`
	TypeID  string `json:"type_id" validate:"required"`
}

// updateDocumentRequest carries document edits; absent fields stay unchanged.
type updateDocumentRequest struct {
	Title   string `json:"title"   validate:"omitempty,min=1,max=255"`
	Content string `json:"content" validate:"omitempty"`
}
