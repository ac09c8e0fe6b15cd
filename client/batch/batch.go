package batch

import (
	"context"
	"io"
	"os"
	"strconv"

	"github.com/GDVFox/ctxio"
	"github.com/mohae/deepcopy"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/GDVFox/gotabulator/tabulator"
	"github.com/GDVFox/gotabulator/util/message"
)

// Job одно задание пакета.
type Job struct {
	Name                    string `yaml:"name"`
	message.TabulateRequest `yaml:",inline"`
}

// File содержимое файла пакета. Каждое задание наследует значения из Defaults
// и переопределяет только указанные в нем поля.
type File struct {
	Defaults Job         `yaml:"defaults"`
	Jobs     []yaml.Node `yaml:"jobs"`
}

// Result результат выполнения задания.
type Result struct {
	Job  *Job
	Grid *tabulator.EncodedGrid
	Err  error
}

// ExecuteFunc выполняет одно задание.
type ExecuteFunc func(ctx context.Context, job *Job) (*tabulator.EncodedGrid, error)

// LoadFile читает файл пакета, чтение прерывается при отмене ctx.
func LoadFile(ctx context.Context, filename string) ([]*Job, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "can not open batch file")
	}
	defer f.Close()

	return Load(ctx, f)
}

// Load читает пакет из r.
func Load(ctx context.Context, r io.Reader) ([]*Job, error) {
	data, err := io.ReadAll(ctxio.NewContextReader(ctx, io.NopCloser(r)))
	if err != nil {
		return nil, errors.Wrap(err, "can not read batch")
	}

	file := &File{}
	if err := yaml.Unmarshal(data, file); err != nil {
		return nil, errors.Wrap(err, "can not decode batch")
	}

	jobs := make([]*Job, 0, len(file.Jobs))
	for i := range file.Jobs {
		job := deepcopy.Copy(&file.Defaults).(*Job)
		job.Name = ""
		if err := file.Jobs[i].Decode(job); err != nil {
			return nil, errors.Wrapf(err, "can not decode job #%d", i+1)
		}
		if job.Name == "" {
			job.Name = "job-" + strconv.Itoa(i+1)
		}
		if job.Expression == "" {
			return nil, errors.Errorf("job %s: expression can not be empty", job.Name)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// Run выполняет задания в workers потоков. Ошибка отдельного задания
// сохраняется в его Result, выполнение прерывается только отменой ctx.
// Результаты возвращаются в порядке заданий.
func Run(ctx context.Context, jobs []*Job, workers int, execute ExecuteFunc) ([]*Result, error) {
	if workers <= 0 {
		workers = 1
	}

	results := make([]*Result, len(jobs))
	indexes := make(chan int)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(indexes)
		for i := range jobs {
			select {
			case indexes <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range indexes {
				if err := ctx.Err(); err != nil {
					return err
				}
				grid, err := execute(ctx, jobs[i])
				results[i] = &Result{Job: jobs[i], Grid: grid, Err: err}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
