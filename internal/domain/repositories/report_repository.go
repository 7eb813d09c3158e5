package repositories

import (
	"io"

	"github.com/rios0rios0/depadvice/internal/domain/entities"
)

// ReportRepository renders an advice result in one output format.
type ReportRepository interface {
	// Name returns the format identifier (e.g. "console", "json").
	Name() string

	// Write renders the result to w.
	Write(w io.Writer, result *entities.AdviceResult) error
}
