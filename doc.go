// Package nepeta parses and writes the nepeta document format: a
// human-readable tree of nodes where each node has an identifier, a list
// of data values, and a list of children.
//
// # Format
//
// A node is written as a command line: the identifier first, data values
// after it, separated by whitespace.
//
//	server web-1 "eu-west" 8080
//
// Values may be bare identifiers, quoted strings with C-style escapes, or
// indented blocks:
//
//	motd {
//		Scheduled maintenance tonight.
//		Expect brief interruptions.
//	}
//	icon { base64
//		iVBORw0KGgo=
//	}
//
// Prefixing a header with # opens a nested scope, closed by a bare # on
// its own line. A ; ends a node early so several can share a line, and a
// trailing \ continues the data list on the next line. Comments use //
// and /* */. Both LF and CRLF sources are accepted; output uses LF.
//
// # Parsing
//
// Parse returns a tree that owns its storage. ParseView parses
// destructively in place: value slices alias the source buffer and no
// storage is allocated for them, in exchange for the buffer being
// consumed by the parse.
//
// Parsing never fails. Malformed input is reported through the
// ErrorHandler with 1-based line and column, parsing recovers, and a
// best-effort tree is returned. At most DefaultErrorLimit errors are
// reported per parse unless WithErrorLimit sets another limit.
//
// # Writing
//
// Write and Encode serialize a tree. Each value is emitted in its most
// compact legal form: identifier, quoted string, block, or base64 block
// for binary content. Output always parses back to an equal tree; only
// the root's children are representable, so id or data set directly on
// the root are dropped.
package nepeta
