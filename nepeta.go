package nepeta

// Version of the format implemented by this package.
const Version = "0.9.0"

// DefaultRecursionLimit bounds how deeply nested nodes may parse. Nodes
// beyond the limit are reported and their subtrees skipped.
const DefaultRecursionLimit = 2000

// DefaultErrorLimit is the number of errors reported per parse before
// further errors are silently dropped.
const DefaultErrorLimit = 10

// ErrorKind identifies a parse error or warning.
type ErrorKind int

const (
	// ErrIllegalCharacter is raised for a byte that is not permitted in
	// the current context. The byte is skipped, except a # where a header
	// is expected, which is read again as a nested-node marker.
	ErrIllegalCharacter ErrorKind = iota
	// ErrNodeNotClosed is raised at EOF while a #-opened node is still
	// open. The position is the opening # of the unclosed node.
	ErrNodeNotClosed
	// ErrCommentNotClosed is raised at EOF inside a multi-line comment.
	ErrCommentNotClosed
	// ErrStringNotClosed is raised when a newline or EOF is reached
	// inside a quoted string. The partial content is retained.
	ErrStringNotClosed
	// ErrBlockNotClosed is raised at EOF inside a block. The partial
	// content is retained.
	ErrBlockNotClosed
	// ErrTooManyNodeClosingMarkers is raised for a stray # at the
	// outermost level.
	ErrTooManyNodeClosingMarkers
	// ErrBadCodec is raised for an unknown codec after '{'. The block is
	// read as text.
	ErrBadCodec
	// ErrRecursionLimitReached is raised when nesting would exceed the
	// recursion limit. The offending subtree is skipped to end of line.
	ErrRecursionLimitReached
	// ErrRequireNewline warns of trailing content on a line that must
	// end, such as after a codec name or a \ continuation.
	ErrRequireNewline
	// ErrInvalidEscape warns of a \ followed by a byte outside the
	// escape table. The escape is dropped.
	ErrInvalidEscape
	// ErrBadBlockClose warns of a } at the text indentation of a block.
	// The } is kept as literal text; escape it as \} when intended.
	ErrBadBlockClose
)

var errorKindNames = map[ErrorKind]string{
	ErrIllegalCharacter:          "illegal_character",
	ErrNodeNotClosed:             "node_not_closed",
	ErrCommentNotClosed:          "comment_not_closed",
	ErrStringNotClosed:           "string_not_closed",
	ErrBlockNotClosed:            "block_not_closed",
	ErrTooManyNodeClosingMarkers: "too_many_node_closing_markers",
	ErrBadCodec:                  "bad_codec",
	ErrRecursionLimitReached:     "recursion_limit_reached",
	ErrRequireNewline:            "require_newline",
	ErrInvalidEscape:             "invalid_escape",
	ErrBadBlockClose:             "bad_block_close",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsWarning reports whether k is a warning rather than an error: the
// document is still well-defined, but likely not what the author meant.
func (k ErrorKind) IsWarning() bool {
	return k >= ErrRequireNewline
}

// ErrorHandler receives parse errors as they are detected, in source
// order. Line and column are 1-based. ch is the offending byte, or NUL
// for kinds that have no meaningful character. Handlers must not call
// back into the parser for the same tree.
type ErrorHandler func(kind ErrorKind, ch byte, line, column int)

// Option configures a parse call.
type Option func(*parseConfig)

type parseConfig struct {
	recursionLimit int
	errorLimit     int
}

// WithRecursionLimit overrides DefaultRecursionLimit.
func WithRecursionLimit(limit int) Option {
	return func(c *parseConfig) { c.recursionLimit = limit }
}

// WithErrorLimit overrides DefaultErrorLimit.
func WithErrorLimit(limit int) Option {
	return func(c *parseConfig) { c.errorLimit = limit }
}

// Parse parses source into a fresh document tree. The tree owns all of
// its storage and is independent of source. Parsing never fails: errors
// are reported through onError (which may be nil) and a best-effort tree
// is always returned.
func Parse(source []byte, onError ErrorHandler, opts ...Option) *Node {
	doc := &Node{}
	ParseInto(doc, source, onError, opts...)
	return doc
}

// ParseInto parses source and appends the resulting nodes to doc's
// children.
func ParseInto(doc *Node, source []byte, onError ErrorHandler, opts ...Option) {
	p := newParser(source, ownedValues{src: source}, onError, opts)
	p.parseNodeBody(doc, 0, 0)
}

// ParseView parses source destructively in place and returns a tree whose
// ID and Data slices alias source. No storage is allocated for values:
// escape sequences and base64 blocks are decoded by writing over the
// bytes they were read from. The caller must keep source alive and
// unmodified for as long as the tree is used.
func ParseView(source []byte, onError ErrorHandler, opts ...Option) *Node {
	doc := &Node{}
	ParseViewInto(doc, source, onError, opts...)
	return doc
}

// ParseViewInto is ParseView appending to an existing document.
func ParseViewInto(doc *Node, source []byte, onError ErrorHandler, opts ...Option) {
	p := newParser(source, viewValues{src: source}, onError, opts)
	p.parseNodeBody(doc, 0, 0)
}
