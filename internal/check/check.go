// Package check spells and parses a set of files on a bounded pool of
// goroutines, reporting progress to a sink as each file moves through its
// stages.
package check

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"svfacts/internal/diag"
	"svfacts/internal/parser"
	"svfacts/internal/source"
	"svfacts/internal/spelling"
	"svfacts/internal/trace"
)

// Extensions lists the suffixes ListFiles collects from directories.
var Extensions = []string{".sv", ".svh", ".v"}

type Options struct {
	// Jobs bounds the number of files in flight; 0 means GOMAXPROCS.
	Jobs int
	// MaxDiagnostics caps each file's bag; 0 keeps everything.
	MaxDiagnostics int
	MaxErrors      uint
	Property       bool
	// Tracer defaults to the one carried by the context.
	Tracer trace.Tracer
	Sink   ProgressSink
}

// FileResult is the outcome for one input file.
type FileResult struct {
	Path   string
	FileID source.FileID
	Tokens int
	Root   *parser.Node
	Bag    *diag.Bag
	// Errors counts parser errors, including those past MaxErrors.
	Errors  uint
	Timings Timings
}

type Result struct {
	FileSet *source.FileSet
	// Files is in input order.
	Files []FileResult
}

// HasErrors reports whether any file produced an error diagnostic.
func (r *Result) HasErrors() bool {
	for i := range r.Files {
		if r.Files[i].Bag != nil && r.Files[i].Bag.HasErrors() {
			return true
		}
	}
	return false
}

// Merged returns every file's diagnostics in one sorted bag.
func (r *Result) Merged() *diag.Bag {
	out := diag.NewBag(0)
	for i := range r.Files {
		out.Merge(r.Files[i].Bag)
	}
	out.Sort()
	return out
}

// ListFiles expands directories into the source files below them, sorted
// per directory. Plain files are kept as given, whatever their suffix.
func ListFiles(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("check: %w", err)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		var found []string
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && hasSourceExt(path) {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("check: walk %s: %w", p, err)
		}
		sort.Strings(found)
		files = append(files, found...)
	}
	return files, nil
}

func hasSourceExt(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Run checks files concurrently. Load failures become diagnostics on the
// file's bag; the returned error is only set when ctx is cancelled.
func Run(ctx context.Context, files []string, opts Options) (*Result, error) {
	fileSet := source.NewFileSet()
	results := make([]FileResult, len(files))
	loadErrs := make([]error, len(files))
	for i, path := range files {
		results[i] = FileResult{Path: path}
		id, err := fileSet.Load(path)
		if err != nil {
			// an empty placeholder gives the load diagnostic a location
			loadErrs[i] = err
			id = fileSet.Add(path, nil, source.FileVirtual)
		}
		results[i].FileID = id
	}
	res := &Result{FileSet: fileSet, Files: results}
	if len(files) == 0 {
		return res, nil
	}

	tracer := opts.Tracer
	if tracer == nil {
		tracer = trace.FromContext(ctx)
	}
	run := trace.Begin(tracer, trace.ScopeRun, "check", trace.ParentSpan(ctx))

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	for _, path := range files {
		emit(opts.Sink, Event{File: path, Stage: StageLoad, Status: StatusQueued})
	}
	emit(opts.Sink, Event{Stage: StageParse, Status: StatusWorking})

	started := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i := range files {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// each goroutine owns results[i]
			checkFile(fileSet, &results[i], loadErrs[i], opts, tracer, run.ID())
			return nil
		})
	}
	err := g.Wait()

	status := StatusDone
	if err != nil {
		status = StatusError
	}
	run.WithExtra("files", strconv.Itoa(len(files))).
		WithExtra("jobs", strconv.Itoa(jobs)).
		End(string(status))
	emit(opts.Sink, Event{Stage: StageParse, Status: status, Err: err, Elapsed: time.Since(started)})
	return res, err
}

func checkFile(fileSet *source.FileSet, res *FileResult, loadErr error, opts Options, tracer trace.Tracer, parent uint64) {
	bag := diag.NewBag(opts.MaxDiagnostics)
	res.Bag = bag
	if loadErr != nil {
		bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{File: res.FileID}, "failed to load file: "+loadErr.Error()))
		emit(opts.Sink, Event{File: res.Path, Stage: StageLoad, Status: StatusError, Err: loadErr})
		return
	}

	span := trace.Begin(tracer, trace.ScopeFile, "check:"+res.Path, parent)
	reporter := diag.BagReporter{Bag: bag}

	emit(opts.Sink, Event{File: res.Path, Stage: StageSpell, Status: StatusWorking})
	start := time.Now()
	toks := spelling.Tokens(fileSet.Get(res.FileID), spelling.Options{Reporter: reporter})
	res.Timings.Set(StageSpell, time.Since(start))
	res.Tokens = len(toks)

	emit(opts.Sink, Event{File: res.Path, Stage: StageParse, Status: StatusWorking})
	start = time.Now()
	parsed := parser.ParseFile(toks, parser.Options{
		Property:    opts.Property,
		MaxErrors:   opts.MaxErrors,
		Reporter:    reporter,
		Tracer:      tracer,
		TraceParent: span.ID(),
	})
	res.Timings.Set(StageParse, time.Since(start))
	res.Root = parsed.Root
	res.Errors = parsed.Errors
	bag.Sort()

	status := StatusDone
	if bag.HasErrors() {
		status = StatusError
	}
	span.WithExtra("tokens", strconv.Itoa(res.Tokens)).
		WithExtra("diagnostics", strconv.Itoa(bag.Len())).
		End(string(status))
	emit(opts.Sink, Event{File: res.Path, Stage: StageParse, Status: status, Elapsed: res.Timings.Sum()})
}
