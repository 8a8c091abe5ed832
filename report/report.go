// Package report generates report documents through per-kind creators. Each
// creator decides which Document to build; Generator drives the shared steps
// of rendering the document's statement and writing it out.
package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/gaborage/stmtkit/database"
	"github.com/gaborage/stmtkit/logger"
)

// Kind names a report type.
type Kind = string

// Built-in report kinds.
const (
	Sales     Kind = "sales"
	Inventory Kind = "inventory"
)

// ErrUnknownKind is returned when no creator is registered for a kind.
var ErrUnknownKind = errors.New("unknown report kind")

// Document is a report that knows which statement feeds it.
type Document interface {
	// ID uniquely identifies this document instance.
	ID() uuid.UUID
	Kind() Kind
	// Title is the human readable report name.
	Title() string
	// Query builds the statement the report would run.
	Query(f *database.Factory) (*database.Statement, error)
}

// Creator creates a Document. Implementations choose the concrete type.
type Creator interface {
	CreateReport() Document
}

// CreatorFunc adapts a plain function to Creator.
type CreatorFunc func() Document

// CreateReport calls fn.
func (fn CreatorFunc) CreateReport() Document {
	return fn()
}

// Generator renders documents produced by a Creator.
type Generator struct {
	statements *database.Factory
	log        logger.Logger
}

// NewGenerator creates a Generator that builds statements with f.
func NewGenerator(f *database.Factory, log logger.Logger) *Generator {
	return &Generator{statements: f, log: log}
}

// Generate asks c for a document, renders its statement and writes the report to w.
func (g *Generator) Generate(c Creator, w io.Writer) error {
	doc := c.CreateReport()

	stmt, err := doc.Query(g.statements)
	if err != nil {
		return fmt.Errorf("build %s report query: %w", doc.Kind(), err)
	}
	sql, err := g.statements.Render(stmt)
	if err != nil {
		return fmt.Errorf("render %s report query: %w", doc.Kind(), err)
	}

	if _, err := fmt.Fprintf(w, "Generating %s...\n  id:        %s\n  statement: %s\n", doc.Title(), doc.ID(), sql); err != nil {
		return fmt.Errorf("write %s report: %w", doc.Kind(), err)
	}

	if g.log != nil {
		g.log.Info().
			Str("kind", doc.Kind()).
			Str("id", doc.ID().String()).
			Msg("Report generated")
	}
	return nil
}
