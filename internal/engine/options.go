package engine

// Option configures an Engine during creation.
type Option func(*Engine)

// WithMaxHistory caps the undo stack.
func WithMaxHistory(max int) Option {
	return func(e *Engine) {
		if max > 0 {
			e.maxHistory = max
		}
	}
}

// WithOnChange installs the document-changed sink. It is invoked
// synchronously with the generated text, exactly once per committed
// tree-changing edit.
func WithOnChange(fn ChangeFunc) Option {
	return func(e *Engine) {
		e.onChange = fn
	}
}

// WithReadOnly creates an engine that declines every mutation.
func WithReadOnly() Option {
	return func(e *Engine) {
		e.readOnly = true
	}
}
