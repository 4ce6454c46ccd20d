package firestore

import (
	"context"

	"tracenfind/internal/errors"

	"cloud.google.com/go/firestore"
)

// bulkWrites keeps the jobs enqueued on one BulkWriter so the outcome of each
// write can be read back after the flush.
type bulkWrites struct {
	bw   *firestore.BulkWriter
	jobs []*firestore.BulkWriterJob
}

func newBulkWrites(ctx context.Context, client *firestore.Client) *bulkWrites {
	return &bulkWrites{bw: client.BulkWriter(ctx)}
}

func (b *bulkWrites) update(ref *firestore.DocumentRef, updates []firestore.Update) error {
	return b.track(b.bw.Update(ref, updates))
}

func (b *bulkWrites) delete(ref *firestore.DocumentRef) error {
	return b.track(b.bw.Delete(ref))
}

func (b *bulkWrites) track(job *firestore.BulkWriterJob, err error) error {
	if err != nil {
		return err
	}
	b.jobs = append(b.jobs, job)

	return nil
}

// finish flushes the writer and returns how many writes the server applied.
// Rejected writes are joined into the returned error.
func (b *bulkWrites) finish() (int, error) {
	b.bw.End()

	applied := 0
	var failed []error
	for _, job := range b.jobs {
		if _, err := job.Results(); err != nil {
			failed = append(failed, err)

			continue
		}
		applied++
	}

	return applied, errors.Join(failed...)
}
