package errors

import (
	stderrors "errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Kind identifies one member of the closed set of SDK failures.
type Kind string

const (
	KindNodeError                     Kind = "node_error"
	KindIoError                       Kind = "io_error"
	KindJSONParseError                Kind = "json_parse_error"
	KindBase58Error                   Kind = "base58_error"
	KindBase64Error                   Kind = "base64_error"
	KindHexError                      Kind = "hex_error"
	KindBlakeError                    Kind = "blake_error"
	KindSignatureError                Kind = "signature_error"
	KindInvalidBytesLength            Kind = "invalid_bytes_length"
	KindPointConversionError          Kind = "point_conversion_error"
	KindURLParseError                 Kind = "url_parse_error"
	KindWrongTransactionType          Kind = "wrong_transaction_type"
	KindProtobufEncodeError           Kind = "protobuf_encode_error"
	KindUnsupportedOperation          Kind = "unsupported_operation"
	KindInvalidAliasName              Kind = "invalid_alias_name"
	KindUnsupportedOrderVersion       Kind = "unsupported_order_version"
	KindUnsupportedTransactionVersion Kind = "unsupported_transaction_version"
	KindInvalidAddress                Kind = "invalid_address"
	KindInvalidTransaction            Kind = "invalid_transaction"
)

// Error message constants
const (
	ErrMsgInvalidAddressLength   = "address must be %d bytes, got %d"
	ErrMsgInvalidAddressVersion  = "unsupported address version %d"
	ErrMsgInvalidAddressChecksum = "address checksum mismatch"
	ErrMsgInvalidAliasName       = "alias name %q must match %s"
	ErrMsgUnsupportedTxVersion   = "transaction type %d supports versions %d..%d, got %d"
	ErrMsgUnsupportedOrderVer    = "order version %d is not supported"
	ErrMsgWrongTransactionType   = "expected %s, got %T"
	ErrMsgInvalidBytesLength     = "%s must be %d bytes, got %d"
)

// Error is the single error type returned by every package of the SDK.
type Error struct {
	Kind    Kind
	Message string

	// Code is the node's error code for KindNodeError.
	Code int
	// Field is the JSON pointer of the offending value for KindJSONParseError.
	Field string
	// JSON is a snippet of the offending document for KindJSONParseError.
	JSON string

	cause error
}

// Error implements the error interface
func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KindNodeError:
		msg = fmt.Sprintf("%s: code %d: %s", e.Kind, e.Code, e.Message)
	case KindJSONParseError:
		msg = fmt.Sprintf("%s: field %q in %s", e.Kind, e.Field, e.JSON)
		if e.Message != "" {
			msg += ": " + e.Message
		}
	default:
		msg = string(e.Kind)
		if e.Message != "" {
			msg += ": " + e.Message
		}
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Cause keeps compatibility with github.com/pkg/errors.Cause.
func (e *Error) Cause() error {
	return e.cause
}

// Is matches any *Error with the same kind, so the Err* sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrNodeError                     = &Error{Kind: KindNodeError}
	ErrIoError                       = &Error{Kind: KindIoError}
	ErrJSONParseError                = &Error{Kind: KindJSONParseError}
	ErrBase58Error                   = &Error{Kind: KindBase58Error}
	ErrBase64Error                   = &Error{Kind: KindBase64Error}
	ErrHexError                      = &Error{Kind: KindHexError}
	ErrBlakeError                    = &Error{Kind: KindBlakeError}
	ErrSignatureError                = &Error{Kind: KindSignatureError}
	ErrInvalidBytesLength            = &Error{Kind: KindInvalidBytesLength}
	ErrPointConversionError          = &Error{Kind: KindPointConversionError}
	ErrURLParseError                 = &Error{Kind: KindURLParseError}
	ErrWrongTransactionType          = &Error{Kind: KindWrongTransactionType}
	ErrProtobufEncodeError           = &Error{Kind: KindProtobufEncodeError}
	ErrUnsupportedOperation          = &Error{Kind: KindUnsupportedOperation}
	ErrInvalidAliasName              = &Error{Kind: KindInvalidAliasName}
	ErrUnsupportedOrderVersion       = &Error{Kind: KindUnsupportedOrderVersion}
	ErrUnsupportedTransactionVersion = &Error{Kind: KindUnsupportedTransactionVersion}
	ErrInvalidAddress                = &Error{Kind: KindInvalidAddress}
	ErrInvalidTransaction            = &Error{Kind: KindInvalidTransaction}
)

// New creates an error of the given kind.
func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap classifies cause under kind. A nil cause yields nil.
func Wrap(kind Kind, cause error, message string) error {
	if cause == nil {
		return nil
	}
	return &Error{Kind: kind, Message: message, cause: pkgerrors.WithStack(cause)}
}

// NewNodeError is raised when a node response carries an "error" field.
func NewNodeError(code int, message string) error {
	return &Error{Kind: KindNodeError, Code: code, Message: message}
}

// NewJSONParseError reports a failed typed read at the JSON pointer field.
func NewJSONParseError(field, json, message string) error {
	return &Error{Kind: KindJSONParseError, Field: field, JSON: json, Message: message}
}

// KindOf returns the kind of err, or "" if err was not produced by this package.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}
