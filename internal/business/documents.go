package business

import (
	"fmt"
	"time"
)

// Document is an issued business document such as an invoice.
type Document struct {
	ID       string
	Kind     string
	Body     string
	IssuedAt time.Time
}

// DocumentService issues numbered documents.
type DocumentService struct {
	docs  Repository[Document]
	clock Clock
}

// NewDocumentService creates a DocumentService.
func NewDocumentService(docs Repository[Document], clock Clock) *DocumentService {
	return &DocumentService{docs: docs, clock: clock}
}

// Issue stores a new document numbered per kind, e.g. "invoice-0003".
func (s *DocumentService) Issue(kind, body string) Document {
	n := 1
	for _, d := range s.docs.List() {
		if d.Kind == kind {
			n++
		}
	}
	d := Document{
		ID:       fmt.Sprintf("%s-%04d", kind, n),
		Kind:     kind,
		Body:     body,
		IssuedAt: s.clock.Now(),
	}
	s.docs.Put(d.ID, d)
	return d
}

// Document returns an issued document.
func (s *DocumentService) Document(id string) (Document, error) {
	return s.docs.Get(id)
}
