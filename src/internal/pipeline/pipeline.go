// FILE: logtint/src/internal/pipeline/pipeline.go
package pipeline

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"logtint/src/internal/config"
	"logtint/src/internal/core"
	"logtint/src/internal/extract"
	"logtint/src/internal/format"
	"logtint/src/internal/timestamp"

	"github.com/lixenwraith/log"
)

var errInvalidUTF8 = errors.New("line is not valid UTF-8")

// Pipeline turns JSON lines into rendered lines. It is built once from the
// resolved configuration and holds no per-line state.
type Pipeline struct {
	extractor  *extract.Extractor
	normalizer *timestamp.Normalizer
	formatter  format.Formatter
	Stats      *Stats
	logger     *log.Logger
}

// Stats for a single run. Blank lines are not counted.
type Stats struct {
	StartTime       time.Time
	RecordsRendered uint64
}

// New creates a pipeline from cfg, rendering with formatter
func New(cfg *config.Config, formatter format.Formatter, logger *log.Logger) (*Pipeline, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if formatter == nil {
		return nil, fmt.Errorf("formatter is nil")
	}

	p := &Pipeline{
		extractor:  extract.New(cfg.Fields),
		normalizer: timestamp.NewNormalizer(cfg.Timestamp.Pattern),
		formatter:  formatter,
		Stats: &Stats{
			StartTime: time.Now(),
		},
		logger: logger,
	}

	logger.Debug("msg", "Pipeline created",
		"component", "pipeline",
		"level_key", cfg.Fields.Level,
		"message_key", cfg.Fields.Message,
		"timestamp_key", cfg.Fields.Timestamp,
		"pattern", cfg.Timestamp.Pattern,
		"formatter", formatter.Name())

	return p, nil
}

// ProcessLine runs one non-blank line through extraction, severity mapping,
// timestamp normalization and rendering.
func (p *Pipeline) ProcessLine(line string) ([]byte, error) {
	raw, err := p.extractor.Extract(line)
	if err != nil {
		return nil, err
	}

	level, err := core.ParseSeverity(raw.Level)
	if err != nil {
		return nil, err
	}

	ts, err := p.normalizer.Normalize(raw.Timestamp)
	if err != nil {
		return nil, err
	}

	return p.formatter.Format(core.Record{
		Level:   level,
		Time:    ts,
		Message: raw.Message,
	})
}

// Run reads r line by line until end of input, writing one rendered line to w
// per non-blank input line. Each line is written before the next is read.
// The first failure stops the run and is returned as a *core.Error; lines
// already written stay written. Cancellation is checked between lines.
func (p *Pipeline) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	reader := bufio.NewReader(r)
	var record uint64

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		// The last line may lack a newline, so data and io.EOF can arrive together
		line, readErr := reader.ReadString('\n')

		if strings.TrimSpace(line) != "" {
			record++

			// Lines are text, invalid UTF-8 fails the read rather than the decode
			if !utf8.ValidString(line) {
				return p.fail(&core.Error{Kind: core.KindRead, Record: record, Err: errInvalidUTF8})
			}

			out, err := p.ProcessLine(line)
			if err != nil {
				return p.fail(annotate(err, record))
			}

			if _, err := w.Write(out); err != nil {
				return p.fail(&core.Error{Kind: core.KindWrite, Record: record, Err: err})
			}
			p.Stats.RecordsRendered++
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				p.logger.Debug("msg", "End of input",
					"component", "pipeline",
					"records", p.Stats.RecordsRendered,
					"elapsed", time.Since(p.Stats.StartTime).String())
				return nil
			}
			return p.fail(&core.Error{Kind: core.KindRead, Err: readErr})
		}
	}
}

func (p *Pipeline) fail(err error) error {
	p.logger.Debug("msg", "Pipeline terminated",
		"component", "pipeline",
		"kind", core.KindOf(err).String(),
		"records", p.Stats.RecordsRendered,
		"error", err)
	return err
}

// annotate stamps the record index on a pipeline error
func annotate(err error, record uint64) error {
	var perr *core.Error
	if errors.As(err, &perr) {
		if perr.Record == 0 {
			perr.Record = record
		}
		return err
	}
	return fmt.Errorf("record %d: %w", record, err)
}
