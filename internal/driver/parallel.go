package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"sonet/internal/graph"
	"sonet/internal/lexer"
	"sonet/internal/record"
	"sonet/internal/source"
)

// StatsResult содержит метрики сети для одного документа
type StatsResult struct {
	Path    string
	Metrics graph.Metrics
	Err     error
}

// listXMLFiles возвращает отсортированный список всех *.xml файлов в директории
func listXMLFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".xml") {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// StatsDir computes follow-graph metrics for every *.xml document under
// dir, in parallel. Results keep the sorted file order; per-file failures
// land in StatsResult.Err and do not stop the walk.
func StatsDir(ctx context.Context, dir string, topN, jobs int) ([]StatsResult, error) {
	files, err := listXMLFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]StatsResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			results[i] = StatsOne(path, topN)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// LoadGraph builds the follow graph for a single document. Degree queries
// (mutual followers, suggestions) go through the returned graph directly.
func LoadGraph(path string) (*graph.Graph, error) {
	fileSet := source.NewFileSet()
	id, err := fileSet.Load(path)
	if err != nil {
		return nil, err
	}

	tokens := lexer.Tokenize(fileSet.Get(id), lexer.Options{})
	return graph.Build(record.Project(tokens)), nil
}

// StatsOne computes follow-graph metrics for a single document.
func StatsOne(path string, topN int) StatsResult {
	g, err := LoadGraph(path)
	if err != nil {
		return StatsResult{Path: path, Err: err}
	}
	return StatsResult{Path: path, Metrics: g.ComputeMetrics(topN)}
}
