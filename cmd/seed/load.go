package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jszwec/csvutil"
	"github.com/rs/zerolog"
)

type rowError struct {
	Line int
	Err  error
}

type result struct {
	Created int
	Failed  []rowError
}

func (r result) log(log zerolog.Logger, what string) {
	for _, f := range r.Failed {
		log.Warn().Err(f.Err).Int("line", f.Line).Str("resource", what).Msg("row skipped")
	}
	log.Info().Int("created", r.Created).Int("skipped", len(r.Failed)).Str("resource", what).Msg("seed finished")
}

func loadFile[T any](ctx context.Context, path string, create func(context.Context, T) error) (result, error) {
	f, err := os.Open(path)
	if err != nil {
		return result{}, err
	}
	defer f.Close()
	return load(ctx, f, create)
}

// load decodes one T per CSV record, header first, and hands it to create.
// A failing create is recorded and loading continues; a malformed file
// aborts.
func load[T any](ctx context.Context, r io.Reader, create func(context.Context, T) error) (result, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	dec, err := csvutil.NewDecoder(cr)
	if err != nil {
		return result{}, fmt.Errorf("read header: %w", err)
	}

	var res result
	for {
		var row T
		if err := dec.Decode(&row); errors.Is(err, io.EOF) {
			return res, nil
		} else if err != nil {
			return res, fmt.Errorf("decode: %w", err)
		}

		if err := ctx.Err(); err != nil {
			return res, err
		}

		line, _ := cr.FieldPos(0)
		if err := create(ctx, row); err != nil {
			res.Failed = append(res.Failed, rowError{Line: line, Err: err})
			continue
		}
		res.Created++
	}
}
