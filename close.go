package cutpool

// Close hard-deletes every pooled payload and releases the backing
// storage. Outstanding handles expire; Release still fires for every
// payload. Idempotent, and safe on a nil Workspace.
func (w *Workspace[T]) Close() error {
	if w == nil {
		return nil
	}
	return w.pool.Close()
}
