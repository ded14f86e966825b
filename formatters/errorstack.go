package formatters

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/pkg/errors"

	"github.com/willibrandon/botlog/core"
)

// ErrorInfoPlaceholder is logged for error values nothing could be extracted from.
const ErrorInfoPlaceholder = "could not extract error info"

// stackTracer is implemented by errors created with github.com/pkg/errors.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// multiError is implemented by errors.Join and fmt.Errorf with several %w verbs.
type multiError interface {
	Unwrap() []error
}

// ExtractErrorStacks converts the contents of an error slot into strings.
//
// A single value yields a string; a slice or array (nested to any depth) or a
// joined error yields one flat []string. Each error contributes its stack
// trace when it carries one, else its message, else its string form, else
// ErrorInfoPlaceholder. ExtractErrorStacks never panics.
func ExtractErrorStacks(value any) any {
	if items, ok := asSequence(value); ok {
		return flattenErrors(items, nil)
	}
	return describeError(value)
}

func flattenErrors(items []any, out []string) []string {
	if out == nil {
		out = make([]string, 0, len(items))
	}
	for _, item := range items {
		if nested, ok := asSequence(item); ok {
			out = flattenErrors(nested, out)
			continue
		}
		out = append(out, describeError(item))
	}
	return out
}

// asSequence unpacks slices, arrays and joined errors. Byte slices are not
// sequences; they describe themselves as text.
func asSequence(value any) ([]any, bool) {
	switch v := value.(type) {
	case nil, []byte:
		return nil, false
	case []any:
		return v, true
	case []error:
		items := make([]any, len(v))
		for i, err := range v {
			items[i] = err
		}
		return items, true
	case error:
		if _, ok := v.(stackTracer); ok {
			return nil, false
		}
		if joined, ok := v.(multiError); ok {
			return joinedErrors(v, joined)
		}
		return nil, false
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

// joinedErrors splits err into its children only when it has the errors.Join
// shape: at least one child, and a message that is exactly the child
// messages joined by newlines. Any other multi-error, such as fmt.Errorf with
// several %w verbs, carries text of its own and stays a single error.
func joinedErrors(err error, joined multiError) ([]any, bool) {
	errs := joined.Unwrap()
	if len(errs) == 0 {
		return nil, false
	}
	items := make([]any, len(errs))
	messages := make([]string, len(errs))
	for i, child := range errs {
		if child == nil {
			return nil, false
		}
		items[i] = child
		messages[i] = safeString(child.Error)
	}
	if safeString(err.Error) != strings.Join(messages, "\n") {
		return nil, false
	}
	return items, true
}

func describeError(value any) string {
	if isNil(value) {
		return ErrorInfoPlaceholder
	}

	if err, ok := value.(error); ok {
		if s := safeString(func() string { return stackOf(err) }); s != "" {
			return s
		}
		if s := safeString(err.Error); s != "" {
			return s
		}
		if st, ok := value.(fmt.Stringer); ok {
			if s := safeString(st.String); s != "" {
				return s
			}
		}
		return ErrorInfoPlaceholder
	}

	switch v := value.(type) {
	case string:
		if v != "" {
			return v
		}
	case []byte:
		if len(v) > 0 {
			return string(v)
		}
	case fmt.Stringer:
		if s := safeString(v.String); s != "" {
			return s
		}
	default:
		if s := safeString(func() string { return fmt.Sprint(v) }); s != "" {
			return s
		}
	}
	return ErrorInfoPlaceholder
}

// stackOf renders err with its stack trace, or returns "" when no error in
// its chain carries one.
func stackOf(err error) string {
	if _, ok := err.(stackTracer); ok {
		return fmt.Sprintf("%+v", err)
	}
	var st stackTracer
	if errors.As(err, &st) {
		return fmt.Sprintf("%s%+v", err.Error(), st.StackTrace())
	}
	return ""
}

func safeString(fn func() string) (s string) {
	defer func() {
		if recover() != nil {
			s = ""
		}
	}()
	return fn()
}

// ErrorStackFormatter replaces the error slot of an event with its stack
// strings, so that sinks can render errors the way a console would.
type ErrorStackFormatter struct{}

// NewErrorStackFormatter creates a new error stack formatter.
func NewErrorStackFormatter() *ErrorStackFormatter {
	return &ErrorStackFormatter{}
}

// Format returns the event unchanged when its error slot is empty.
func (f *ErrorStackFormatter) Format(event *core.LogEvent) *core.LogEvent {
	if !event.HasError() {
		return event
	}
	return event.WithError(ExtractErrorStacks(event.Error))
}
