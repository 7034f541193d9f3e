package nepeta

// The parser is a recursive-descent state machine over the scanner. Each
// context either consumes its region or reports an error and recovers so
// that a best-effort tree is always produced. The same control flow runs
// in owned and view mode; only the materializer differs.

type dataKind int

const (
	dataNone dataKind = iota
	dataIdentifier
	dataString
	dataBlock
)

type commentKind int

const (
	notAComment commentKind = iota
	commentSameLine
	commentNextLine
)

type blockCodec int

const (
	codecText blockCodec = iota
	codecBase64
)

type parser struct {
	scanner
	mat            materializer
	recursionLimit int
}

func newParser(src []byte, mat materializer, onError ErrorHandler, opts []Option) *parser {
	cfg := parseConfig{
		recursionLimit: DefaultRecursionLimit,
		errorLimit:     DefaultErrorLimit,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &parser{
		scanner:        newScanner(src, onError, cfg.errorLimit),
		mat:            mat,
		recursionLimit: cfg.recursionLimit,
	}
}

func isSpaceOrNewline(ch byte) bool { return isWhitespace(ch) || isNewline(ch) }
func notNewline(ch byte) bool       { return !isNewline(ch) }
func stringText(ch byte) bool {
	return ch != markerString && !isNewline(ch) && ch != markerEscape
}
func blockText(ch byte) bool {
	return !isNewline(ch) && ch != markerEscape
}

func (p *parser) detectDataKind() dataKind {
	switch {
	case isIdentifier(p.cur):
		return dataIdentifier
	case p.cur == markerString:
		return dataString
	case p.cur == markerBlockOpen:
		return dataBlock
	}
	return dataNone
}

// parseNodeBody reads headers and nested scopes until the enclosing node
// closes or input runs out. openPos is the position of the # that opened
// this scope, used for the node_not_closed report.
func (p *parser) parseNodeBody(node *Node, depth, openPos int) {
	for p.skip(isSpaceOrNewline) {
		if p.cur == markerComment && p.skipComment() != notAComment {
			continue
		}

		nestedPos := p.pos
		nested := p.cur == markerNested
		if nested {
			p.next()
			p.updateCur()
			if p.eof() || isWhitespace(p.cur) || isNewline(p.cur) {
				// Close marker for this scope.
				if depth == 0 {
					p.error(ErrTooManyNodeClosingMarkers, charNull, nestedPos)
				}
				return
			}
		}

		kind := p.detectDataKind()
		if kind == dataIdentifier || kind == dataString {
			child := p.parseNodeHeader(node, kind)
			if depth+1 >= p.recursionLimit {
				p.error(ErrRecursionLimitReached, charNull, nestedPos)
				p.skip(notNewline)
			} else if nested {
				p.parseNodeBody(child, depth+1, nestedPos)
			}
		} else {
			p.error(ErrIllegalCharacter, p.cur, p.pos)
			if p.cur != markerNested {
				p.next()
				p.updateCur()
			}
		}
	}

	if depth > 0 {
		p.error(ErrNodeNotClosed, charNull, openPos)
	}
}

// parseNodeHeader creates a child of node, fills its id from the header
// and its data from the rest of the line, and returns it.
func (p *parser) parseNodeHeader(node *Node, kind dataKind) *Node {
	child := &Node{}
	node.Children = append(node.Children, child)
	child.ID = p.mat.bytes(p.parseSingleData(kind))
	p.parseNodeData(child)
	return child
}

// parseNodeData reads same-line data values until a newline, a semicolon,
// or a comment that passes to the next line.
func (p *parser) parseNodeData(node *Node) {
	for p.skip(isWhitespace) {
		if p.cur == markerComment {
			if kind := p.skipComment(); kind != notAComment {
				if kind == commentNextLine {
					return
				}
				continue
			}
		}

		switch {
		case p.cur == markerEndOfData:
			p.next()
			p.updateCur()
			return
		case p.cur == markerEscape:
			// Line continuation: the data context resumes after the
			// newline.
			p.next()
			p.updateCur()
			p.skipWhitespaceUntilNewline()
		case isNewline(p.cur):
			return
		default:
			kind := p.detectDataKind()
			if kind == dataNone {
				p.error(ErrIllegalCharacter, p.cur, p.pos)
				p.next()
				p.updateCur()
			} else {
				node.Data = append(node.Data, p.mat.bytes(p.parseSingleData(kind)))
			}
		}
	}
}

func (p *parser) parseSingleData(kind dataKind) value {
	switch kind {
	case dataString:
		return p.parseString()
	case dataBlock:
		return p.parseBlock()
	default:
		return p.parseIdentifier()
	}
}

func (p *parser) parseIdentifier() value {
	v := p.mat.begin(p.pos)
	n := p.read(isIdentifier)
	p.mat.appendRange(&v, p.pos-n, p.pos)
	return v
}

func (p *parser) parseString() value {
	openPos := p.pos
	p.next()
	v := p.mat.begin(p.pos)

	for !p.eof() {
		p.updateCurUnsafe()

		n := p.read(stringText)
		p.mat.appendRange(&v, p.pos-n, p.pos)

		if p.cur == markerString {
			p.next()
			p.updateCur()
			return v
		}
		if p.cur == markerEscape {
			p.readEscape(&v)
			continue
		}
		// Newline: the string ends here, unconsumed.
		break
	}

	p.error(ErrStringNotClosed, charNull, openPos)
	return v
}

// readEscape consumes a backslash escape and appends its literal value.
// An invalid escape is reported and dropped; the offending byte stays
// current and is reprocessed as ordinary input.
func (p *parser) readEscape(v *value) {
	p.next()
	p.updateCur()

	literal, ok := unescape(p.cur)
	if !ok {
		p.error(ErrInvalidEscape, p.cur, p.pos)
		return
	}

	p.mat.appendByte(v, literal)
	p.next()
	p.updateCur()
}

func (p *parser) parseBlock() value {
	openPos := p.pos

	p.next()
	p.updateCur()

	if !p.skip(isWhitespace) {
		p.error(ErrBlockNotClosed, charNull, openPos)
		return p.mat.begin(p.pos)
	}

	isBase64 := isIdentifier(p.cur) && p.parseBlockCodec() == codecBase64
	p.skipWhitespaceUntilNewline()

	v := p.parseBlockBody(openPos, isBase64)
	if isBase64 {
		p.mat.resize(&v, decodeBase64InPlace(p.mat.bytes(v)))
	}
	return v
}

func (p *parser) parseBlockCodec() blockCodec {
	codecPos := p.pos
	n := p.read(isIdentifier)
	codec := p.src[p.pos-n : p.pos]

	if string(codec) == "base64" {
		return codecBase64
	}
	if string(codec) != "text" {
		// Recoverable: read the block as text anyway.
		p.error(ErrBadCodec, charNull, codecPos)
	}
	return codecText
}

// parseBlockBody captures block text until the closing brace. The
// indentation of the first content line sets the column depth; every
// following line has up to that much leading whitespace stripped. A
// closing brace counts only when it sits below the text indentation (or
// on the first line).
func (p *parser) parseBlockBody(openPos int, isBase64 bool) value {
	lineStart := p.pos
	p.skip(isWhitespace)
	columnDepth := p.pos - lineStart

	v := p.mat.begin(p.pos)

	firstLine := true
	for !p.eof() {
		if p.cur == markerBlockClose {
			if firstLine || p.pos-lineStart < columnDepth {
				p.next()
				p.updateCur()
				return v
			}
			// Falls through: the brace stays in the text.
			p.error(ErrBadBlockClose, charNull, p.pos)
		}

		// Newlines in base64 bodies are insignificant, so nothing is
		// appended between lines there.
		if !firstLine && !isBase64 {
			p.mat.appendByte(&v, charNewline)
		}

		p.parseBlockLine(&v)

		lineStart = p.pos
		indentEnd := lineStart + columnDepth
		p.skip(func(ch byte) bool {
			return p.pos < indentEnd && isWhitespace(ch)
		})
		firstLine = false
	}

	p.error(ErrBlockNotClosed, charNull, openPos)
	return v
}

func (p *parser) parseBlockLine(v *value) {
	for !p.eof() {
		n := p.read(blockText)
		p.mat.appendRange(v, p.pos-n, p.pos)

		if p.eof() {
			return
		}
		if isNewline(p.cur) {
			p.next()
			p.updateCur()
			return
		}
		p.readEscape(v)
	}
}

// skipWhitespaceUntilNewline enforces that only whitespace remains on the
// current line, then steps past the newline.
func (p *parser) skipWhitespaceUntilNewline() {
	p.skip(isWhitespace)

	if !isNewline(p.cur) {
		p.error(ErrRequireNewline, p.cur, p.pos)
		p.skip(notNewline)
	}

	if !p.eof() {
		p.next()
		p.updateCur()
	}
}

func (p *parser) skipComment() commentKind {
	openPos := p.pos

	switch p.peekNext() {
	case markerCommentEnd:
		p.next()
		p.next()

		kind := commentSameLine
		for !p.eof() {
			p.updateCurUnsafe()
			if p.cur == markerCommentEnd && p.peekNext() == markerComment {
				p.next()
				p.next()
				p.updateCur()
				return kind
			}
			if isNewline(p.cur) {
				kind = commentNextLine
			}
			p.next()
		}

		p.error(ErrCommentNotClosed, charNull, openPos)
		return kind

	case markerComment:
		p.skip(notNewline)
		return commentNextLine

	default:
		return notAComment
	}
}
