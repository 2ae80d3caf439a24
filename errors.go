package verso

import "fmt"

// OptionError reports an invalid source/destination combination, or a
// destination that already exists without force. It aborts the run before
// any write.
type OptionError struct {
	Msg  string
	Hint string
}

func (e *OptionError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s", e.Msg, e.Hint)
	}
	return e.Msg
}

// ConfigError reports a malformed configuration file, carrying the
// offending path.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// MalformedFilenameError reports a post file whose name does not follow
// the YYYY-MM-DD-slug convention.
type MalformedFilenameError struct {
	Name string
	Err  error
}

func (e *MalformedFilenameError) Error() string {
	return fmt.Sprintf("malformed post filename %q: %v", e.Name, e.Err)
}

func (e *MalformedFilenameError) Unwrap() error { return e.Err }

// RenderError wraps a template failure with the layout name and, for post
// pages, the post title, so the offending content can be located without a
// stack trace into the renderer.
type RenderError struct {
	Layout string
	Post   string
	Err    error
}

func (e *RenderError) Error() string {
	if e.Post != "" {
		return fmt.Sprintf("rendering %v in post %q: %v", e.Layout, e.Post, e.Err)
	}
	return fmt.Sprintf("rendering %v: %v", e.Layout, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
