package filesystem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/depadvice/internal/domain/entities"
	"github.com/rios0rios0/depadvice/internal/domain/repositories"
)

const (
	reportsDir = "reports"
	graphsDir  = "graphs"
)

// AnalysisRepository loads analyses from YAML or JSON documents on disk.
//
// A path may be a single document holding everything, or a directory with an
// analysis.{yaml,yml,json} document plus optional reports/ and graphs/
// subdirectories holding one document per variant.
type AnalysisRepository struct{}

var _ repositories.AnalysisRepository = (*AnalysisRepository)(nil)

// NewAnalysisRepository creates a new AnalysisRepository.
func NewAnalysisRepository() *AnalysisRepository {
	return &AnalysisRepository{}
}

// Load reads the analysis stored at path.
func (it *AnalysisRepository) Load(ctx context.Context, path string) (*entities.AnalysisInput, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read analysis %q: %w", path, err)
	}

	var doc analysisDocument
	if info.IsDir() {
		if dirErr := it.loadDirectory(ctx, path, &doc); dirErr != nil {
			return nil, dirErr
		}
	} else if decodeErr := decodeFile(path, &doc); decodeErr != nil {
		return nil, decodeErr
	}

	input, err := doc.toInput()
	if err != nil {
		return nil, fmt.Errorf("invalid analysis %q: %w", path, err)
	}

	logger.Debugf(
		"Loaded analysis of %s: %d reports, %d graphs, %d declarations",
		input.Project.Identifier, len(input.Reports), len(input.Graphs), len(input.Declarations),
	)
	return input, nil
}

func (it *AnalysisRepository) loadDirectory(ctx context.Context, dir string, doc *analysisDocument) error {
	mainPath, err := findAnalysisDocument(dir)
	if err != nil {
		return err
	}
	if decodeErr := decodeFile(mainPath, doc); decodeErr != nil {
		return decodeErr
	}

	reports, err := decodeAll[reportDocument](ctx, filepath.Join(dir, reportsDir))
	if err != nil {
		return err
	}
	graphs, err := decodeAll[graphDocument](ctx, filepath.Join(dir, graphsDir))
	if err != nil {
		return err
	}

	doc.Reports = append(doc.Reports, reports...)
	doc.Graphs = append(doc.Graphs, graphs...)
	return nil
}

// decodeAll decodes every document of a directory concurrently. Results keep
// the sorted file order. A missing directory yields nothing.
func decodeAll[T any](ctx context.Context, dir string) ([]T, error) {
	files, err := listDocuments(dir)
	if err != nil {
		return nil, err
	}

	results := make([]T, len(files))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, file := range files {
		group.Go(func() error {
			if ctxErr := groupCtx.Err(); ctxErr != nil {
				return ctxErr
			}
			return decodeFile(file, &results[i])
		})
	}
	if waitErr := group.Wait(); waitErr != nil {
		return nil, waitErr
	}
	return results, nil
}

func findAnalysisDocument(dir string) (string, error) {
	for _, name := range []string{"analysis.yaml", "analysis.yml", "analysis.json"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("no analysis.yaml, analysis.yml or analysis.json found in %q", dir)
}

func listDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list %q: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !isDocument(entry.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

func isDocument(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}

// decodeFile decodes a YAML or JSON document depending on its extension.
func decodeFile(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if unmarshalErr := json.Unmarshal(data, target); unmarshalErr != nil {
			return fmt.Errorf("failed to parse %q: %w", path, unmarshalErr)
		}
	case ".yaml", ".yml":
		if unmarshalErr := yaml.Unmarshal(data, target); unmarshalErr != nil {
			return fmt.Errorf("failed to parse %q: %w", path, unmarshalErr)
		}
	default:
		return fmt.Errorf("unsupported document type %q (expected .yaml, .yml or .json)", path)
	}
	return nil
}
