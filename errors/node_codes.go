package errors

import stderrors "errors"

// NodeErrorCode is the numeric "error" field of a failed node response.
type NodeErrorCode int

const (
	NodeCodeUnknown                 NodeErrorCode = 0
	NodeCodeWrongJSON               NodeErrorCode = 1
	NodeCodeInvalidSignature        NodeErrorCode = 101
	NodeCodeInvalidAddress          NodeErrorCode = 102
	NodeCodeStateCheckFailed        NodeErrorCode = 112
	NodeCodeBlockDoesNotExist       NodeErrorCode = 301
	NodeCodeAliasDoesNotExist       NodeErrorCode = 302
	NodeCodeTransactionDoesNotExist NodeErrorCode = 311
)

// NodeCode returns the node error code carried by err.
func NodeCode(err error) (NodeErrorCode, bool) {
	var e *Error
	if !stderrors.As(err, &e) || e.Kind != KindNodeError {
		return 0, false
	}
	return NodeErrorCode(e.Code), true
}

// IsNotFound reports whether the node rejected a lookup of a missing block, alias or transaction.
func IsNotFound(err error) bool {
	code, ok := NodeCode(err)
	if !ok {
		return false
	}
	switch code {
	case NodeCodeBlockDoesNotExist, NodeCodeAliasDoesNotExist, NodeCodeTransactionDoesNotExist:
		return true
	}
	return false
}
