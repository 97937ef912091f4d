// Package errs defines the sentinel errors returned by the fastfix library.
//
// Callers match them with errors.Is:
//
//	msg, err := decoder.Decode(buf)
//	if errors.Is(err, errs.ErrIncompleteMessage) {
//	    // buffer more bytes and retry
//	}
//
// Hot-path call sites return the sentinels directly; higher-level call sites
// may wrap them with fmt.Errorf("%w: ...") to add context.
package errs

import "errors"

var (
	// ErrInvalidTag indicates a tag that is empty, contains non-digit bytes,
	// or overflows uint32. Fatal for that decode attempt.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrIncompleteMessage indicates the buffer ended before a '=' or SOH
	// delimiter was found. This is the normal outcome for a partial stream
	// read: buffer more bytes and decode again from scratch.
	ErrIncompleteMessage = errors.New("incomplete message")

	// ErrInvalidBodyLength indicates the BodyLength field (tag 9) is missing,
	// out of position, unparsable, or does not match the actual body size.
	ErrInvalidBodyLength = errors.New("invalid body length")

	// ErrInvalidCheckSum indicates the CheckSum field (tag 10) is missing,
	// not the last field, unparsable, or does not match the computed sum.
	ErrInvalidCheckSum = errors.New("invalid checksum")

	// ErrInvalidValue indicates a field value could not be interpreted as the
	// requested numeric type.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidUTF8 indicates a field value is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid utf-8")

	// ErrInvalidGroupSpec indicates a loaded group definition is unusable
	// (zero count tag or zero delimiter tag).
	ErrInvalidGroupSpec = errors.New("invalid group spec")

	// ErrInvalidCompression indicates an unknown compression type.
	ErrInvalidCompression = errors.New("invalid compression type")

	// ErrJournalCorrupted indicates a journal block failed structural or
	// hash verification.
	ErrJournalCorrupted = errors.New("journal corrupted")

	// ErrJournalClosed indicates an append or flush on a closed journal
	// writer.
	ErrJournalClosed = errors.New("journal closed")
)
