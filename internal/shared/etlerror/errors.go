package etlerror

import (
	"errors"
	"fmt"
)

// Severity classifies where an ETL error is allowed to propagate.
// Row- and file-level errors stay inside the loader that produced them;
// fatal errors abort the whole batch.
type Severity int

const (
	SeverityRow Severity = iota
	SeverityFile
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityRow:
		return "row"
	case SeverityFile:
		return "file"
	case SeverityFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Classified is an error carrying its severity. It participates in
// errors.Is/As chains through Unwrap.
type Classified struct {
	severity Severity
	err      error
}

func (c *Classified) Error() string {
	return fmt.Sprintf("[%s] %s", c.severity, c.err.Error())
}

func (c *Classified) Unwrap() error {
	return c.err
}

func (c *Classified) Severity() Severity {
	return c.severity
}

// Fatal marks an error as batch-aborting (connection loss, schema failure).
func Fatal(err error) error {
	return classify(SeverityFatal, err)
}

// FileLevel marks an error as aborting a single source file only.
func FileLevel(err error) error {
	return classify(SeverityFile, err)
}

// RowLevel marks an error as affecting a single source row only.
func RowLevel(err error) error {
	return classify(SeverityRow, err)
}

func classify(s Severity, err error) error {
	if err == nil {
		return nil
	}
	return &Classified{severity: s, err: err}
}

// SeverityOf reports the severity of err. Unclassified errors default to
// file level: an unknown failure should never silently widen to the batch.
func SeverityOf(err error) Severity {
	var classified *Classified
	if errors.As(err, &classified) {
		return classified.Severity()
	}
	return SeverityFile
}

// IsFatal reports whether err must abort the batch.
func IsFatal(err error) bool {
	return err != nil && SeverityOf(err) == SeverityFatal
}
