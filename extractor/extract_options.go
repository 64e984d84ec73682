package extractor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/turbot/kgx-ingest-sdk/constants"
	"github.com/turbot/kgx-ingest-sdk/helpers"
)

// ErrorPolicy determines what a pass does after a row fails extraction
type ErrorPolicy string

const (
	// ErrorPolicyContinue records the failure and moves on to the next row
	ErrorPolicyContinue ErrorPolicy = "continue"
	// ErrorPolicyAbort records the failure and stops the pass
	ErrorPolicyAbort ErrorPolicy = "abort"
)

// ExtractOption configures a single extraction pass
// Options which do not apply to a source type are ignored - e.g. SqlExtract ignores the comment character
type ExtractOption func(*extractConfig)

// WithDelimiter sets the field delimiter for delimited text - it must be a single character
func WithDelimiter(delimiter string) ExtractOption {
	return func(c *extractConfig) {
		c.delimiter = delimiter
	}
}

// WithCommentCharacter sets the prefix which marks a line as a comment
// an empty string disables comment detection
func WithCommentCharacter(comment string) ExtractOption {
	return func(c *extractConfig) {
		c.commentCharacter = comment
	}
}

// WithHeaderRow skips the first non-comment line of the input
func WithHeaderRow() ExtractOption {
	return func(c *extractConfig) {
		c.hasHeaderRow = true
	}
}

// WithFilter keeps only lines whose raw value at field is one of values
// The field is read by naively splitting the line on the delimiter, before quote-aware parsing.
// A negative field counts back from the end of the line.
func WithFilter(field int, values ...string) ExtractOption {
	return func(c *extractConfig) {
		c.filter = newFieldFilter(field, values)
	}
}

// WithExcludeUnconnectedNodes discards rows which do not produce a predicate
func WithExcludeUnconnectedNodes() ExtractOption {
	return func(c *extractConfig) {
		c.excludeUnconnectedNodes = true
	}
}

func WithErrorPolicy(policy ErrorPolicy) ExtractOption {
	return func(c *extractConfig) {
		c.errorPolicy = policy
	}
}

type extractConfig struct {
	delimiter               string
	commentCharacter        string
	hasHeaderRow            bool
	filter                  *fieldFilter
	excludeUnconnectedNodes bool
	errorPolicy             ErrorPolicy
}

func newExtractConfig(defaultPolicy ErrorPolicy, opts ...ExtractOption) (*extractConfig, error) {
	c := &extractConfig{
		delimiter:        "\t",
		commentCharacter: constants.DefaultCommentCharacter,
		errorPolicy:      defaultPolicy,
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *extractConfig) validate() error {
	if utf8.RuneCountInString(c.delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", c.delimiter)
	}
	if strings.ContainsAny(c.delimiter, "\"\r\n") || c.delimiter == string(utf8.RuneError) {
		return fmt.Errorf("invalid delimiter %q", c.delimiter)
	}
	switch c.errorPolicy {
	case ErrorPolicyContinue, ErrorPolicyAbort:
	default:
		return fmt.Errorf("invalid error policy '%s'", c.errorPolicy)
	}
	return nil
}

func (c *extractConfig) delimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.delimiter)
	return r
}

type fieldFilter struct {
	field  int
	values map[string]struct{}
}

func newFieldFilter(field int, values []string) *fieldFilter {
	f := &fieldFilter{
		field:  field,
		values: make(map[string]struct{}, len(values)),
	}
	for _, v := range values {
		f.values[v] = struct{}{}
	}
	return f
}

// accepts tests the raw, unparsed line
// a line too short to have the field is rejected
func (f *fieldFilter) accepts(line, delimiter string) bool {
	value, err := helpers.Column(strings.Split(line, delimiter), f.field)
	if err != nil {
		return false
	}
	_, ok := f.values[value]
	return ok
}
