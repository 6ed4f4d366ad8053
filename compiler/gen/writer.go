package gen

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"
	"golang.org/x/tools/txtar"
)

// Renderer renders one Go source file. It is implemented by *jen.File.
type Renderer interface {
	Render(io.Writer) error
}

// OutputFile is a generated file before rendering.
type OutputFile struct {
	// Path is the slash separated path of the file relative to the output
	// root, e.g. "test/test.go".
	Path   string
	Source Renderer
}

// RenderedFile is a generated and formatted file.
type RenderedFile struct {
	Path    string
	Content []byte
}

// Writer renders generated files and writes them to their destination in
// parallel.
type Writer struct {
	workers int

	mu      sync.Mutex
	metrics WriterMetrics
}

// WriterMetrics tracks the output of a writer.
type WriterMetrics struct {
	FilesRendered int
	FilesWritten  int
	TotalBytes    int64
}

// NewWriter creates a new writer with one worker per CPU.
func NewWriter() *Writer {
	return &Writer{workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers sets the number of parallel workers.
func (w *Writer) WithWorkers(n int) *Writer {
	if n > 0 {
		w.workers = n
	}
	return w
}

// Metrics returns a snapshot of the writer metrics.
func (w *Writer) Metrics() WriterMetrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.metrics
}

// Render renders and formats the given files in parallel. The result is
// sorted by path.
func (w *Writer) Render(ctx context.Context, files []OutputFile) ([]RenderedFile, error) {
	out := make([]RenderedFile, len(files))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.workers)
	for i, f := range files {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := f.Source.Render(&buf); err != nil {
				return NewGenerationError("render", f.Path, "render source", err)
			}
			src, err := imports.Process(f.Path, buf.Bytes(), &imports.Options{
				Comments:   true,
				TabIndent:  true,
				TabWidth:   8,
				FormatOnly: true,
			})
			if err != nil {
				return NewGenerationError("render", f.Path, "format source", err)
			}
			out[i] = RenderedFile{Path: f.Path, Content: src}
			w.mu.Lock()
			w.metrics.FilesRendered++
			w.mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	slices.SortFunc(out, func(a, b RenderedFile) int {
		return strings.Compare(a.Path, b.Path)
	})
	return out, nil
}

// WriteDir writes the files under the given directory, creating
// intermediate directories as needed.
func (w *Writer) WriteDir(ctx context.Context, dir string, files []RenderedFile) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.workers)
	for _, f := range files {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(dir, filepath.FromSlash(f.Path))
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return NewGenerationError("write", path, "create directory", err)
			}
			if err := os.WriteFile(path, f.Content, 0o644); err != nil {
				return NewGenerationError("write", path, "write file", err)
			}
			w.written(len(f.Content))
			return nil
		})
	}
	return eg.Wait()
}

// WriteBundle writes all files as one txtar archive to out, with comment
// as the archive header.
func (w *Writer) WriteBundle(out io.Writer, comment string, files []RenderedFile) error {
	data := Bundle(comment, files)
	if _, err := out.Write(data); err != nil {
		return NewGenerationError("bundle", "", "write archive", err)
	}
	w.written(len(data))
	return nil
}

// WriteFile writes all files as one txtar archive to the given path.
func (w *Writer) WriteFile(path, comment string, files []RenderedFile) error {
	data := Bundle(comment, files)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return NewGenerationError("write", path, "create directory", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return NewGenerationError("write", path, "write file", err)
	}
	w.written(len(data))
	return nil
}

func (w *Writer) written(n int) {
	w.mu.Lock()
	w.metrics.FilesWritten++
	w.metrics.TotalBytes += int64(n)
	w.mu.Unlock()
}

// Bundle returns the txtar archive of the given files.
func Bundle(comment string, files []RenderedFile) []byte {
	a := &txtar.Archive{Comment: []byte(comment)}
	if comment != "" && !strings.HasSuffix(comment, "\n") {
		a.Comment = append(a.Comment, '\n')
	}
	for _, f := range files {
		a.Files = append(a.Files, txtar.File{Name: f.Path, Data: f.Content})
	}
	return txtar.Format(a)
}

// Unbundle splits a txtar archive produced by Bundle back into files.
func Unbundle(data []byte) []RenderedFile {
	a := txtar.Parse(data)
	files := make([]RenderedFile, len(a.Files))
	for i, f := range a.Files {
		files[i] = RenderedFile{Path: f.Name, Content: f.Data}
	}
	return files
}
