package logs

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Atik203/Logs-Dashboard/internal/domain"
	"github.com/Atik203/Logs-Dashboard/pkg/ctxutil"
)

// exportHeader is the fixed first line of every CSV export.
var exportHeader = []string{"id", "timestamp", "message", "severity", "source"}

// ExportCSV streams the filtered record set to w as CSV. Records are
// pulled from the store in bounded keyset-paginated batches (cfg
// ExportBatchSize), so peak memory does not depend on the result size.
// Rows follow the filter's ordering, with id as the tiebreaker; an
// unset order defaults to timestamp DESC like the raw listing.
//
// Context cancellation between batches (the client disconnected) stops
// production and returns nil: an aborted download is not a failure.
// Other errors after the first byte are returned wrapped; the response
// status is already committed then, so the handler can only log them
// and terminate the stream.
func (s *Service) ExportCSV(ctx context.Context, f domain.LogFilter, w io.Writer) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}

	batchSize := s.cfg.ExportBatchSize
	if batchSize <= 0 {
		batchSize = 500
	}

	// The first batch is fetched before any byte is written, so store
	// errors here still surface as a regular error response.
	batch, err := s.logs.ListAfter(ctx, f, nil, batchSize)
	if err != nil {
		return fmt.Errorf("export logs: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return streamErr(err)
	}

	for {
		for _, rec := range batch {
			if err := cw.Write(csvRow(rec)); err != nil {
				return streamErr(err)
			}
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			return streamErr(err)
		}

		if len(batch) < batchSize {
			return nil
		}

		if ctx.Err() != nil {
			// Client went away mid-stream; release the cursor quietly.
			return nil
		}

		last := batch[len(batch)-1]
		cursor := &domain.ExportCursor{
			Timestamp: last.Timestamp,
			Severity:  last.Severity.String(),
			Source:    last.Source,
			ID:        last.ID,
		}
		batch, err = s.logs.ListAfter(ctx, f, cursor, batchSize)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return streamErr(err)
		}
	}
}

// csvRow encodes one record in the fixed column order; csv.Writer
// handles quoting of commas, quotes, and newlines.
func csvRow(rec domain.LogRecord) []string {
	return []string{
		strconv.FormatInt(rec.ID, 10),
		rec.Timestamp.UTC().Format(time.RFC3339Nano),
		rec.Message,
		rec.Severity.String(),
		rec.Source,
	}
}

// streamErr classifies an error that happened after the stream started.
// The HTTP status is committed at that point, so there is nothing useful
// to report to the client; the handler logs and terminates the stream.
func streamErr(err error) error {
	return fmt.Errorf("export stream: %w", err)
}
