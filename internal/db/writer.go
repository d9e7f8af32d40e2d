package db

import (
	"context"
	"database/sql"
)

type TxFn func(ctx context.Context, tx *sql.Tx) error

type job struct {
	ctx context.Context
	fn  TxFn
	ch  chan error
}

// Writer serializes all mutations through a single goroutine so that
// the one-connection SQLite handle never sees concurrent writers.
type Writer struct {
	conn *sql.DB
	jobs chan job
	done chan struct{}
}

func NewWriter(conn *sql.DB) *Writer {
	w := &Writer{
		conn: conn,
		jobs: make(chan job, 256),
		done: make(chan struct{}),
	}
	go w.loop()
	return w
}

// Close drains the queue and stops the writer goroutine.
func (w *Writer) Close() {
	close(w.jobs)
	<-w.done
}

// Do runs fn inside a transaction on the writer goroutine and returns
// its result. If the caller's context expires while the job is queued
// or running, Do returns early; the transaction still completes and its
// result lands in the buffered channel, where it is discarded.
func (w *Writer) Do(ctx context.Context, fn TxFn) error {
	ch := make(chan error, 1)
	j := job{ctx: ctx, fn: fn, ch: ch}

	select {
	case w.jobs <- j:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-ch:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *Writer) loop() {
	defer close(w.done)

	for j := range w.jobs {
		tx, err := w.conn.BeginTx(j.ctx, nil)
		if err != nil {
			j.ch <- err
			continue
		}

		if err := j.fn(j.ctx, tx); err != nil {
			_ = tx.Rollback()
			j.ch <- err
			continue
		}

		j.ch <- tx.Commit()
	}
}
