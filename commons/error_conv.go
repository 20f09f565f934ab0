package commons

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	errorTypeDelimiter     string = ";"
	errorTypeEntryNotFound string = "entry_not_found"
	errorTypeEntryCorrupt  string = "entry_corrupt"
	errorTypeInternalError string = "internal_error"
)

func addErrorTypeToMessage(prefix string, details ...string) string {
	detailsStr := strings.Join(details, errorTypeDelimiter)
	return fmt.Sprintf("%s%s%s", prefix, errorTypeDelimiter, detailsStr)
}

func extractErrorInfoFromMessage(msg string) (string, []string, string) {
	msgarr := strings.Split(msg, errorTypeDelimiter)
	if len(msgarr) == 2 {
		return msgarr[0], []string{}, msgarr[1]
	} else if len(msgarr) >= 3 {
		return msgarr[0], msgarr[1 : len(msgarr)-1], msgarr[len(msgarr)-1]
	}
	return errorTypeInternalError, []string{}, ""
}

// ErrorToStatus converts error to grpc status error
func ErrorToStatus(err error) error {
	if err == nil {
		return nil
	}

	if IsEntryNotFoundError(err) {
		var entryNotFoundErr *EntryNotFoundError
		if errors.As(err, &entryNotFoundErr) {
			return status.Error(codes.NotFound, addErrorTypeToMessage(errorTypeEntryNotFound, entryNotFoundErr.Key, entryNotFoundErr.Error()))
		}
		return status.Error(codes.NotFound, addErrorTypeToMessage(errorTypeEntryNotFound, err.Error()))
	} else if IsEntryCorruptError(err) {
		var entryCorruptErr *EntryCorruptError
		if errors.As(err, &entryCorruptErr) {
			return status.Error(codes.InvalidArgument, addErrorTypeToMessage(errorTypeEntryCorrupt, entryCorruptErr.Key, entryCorruptErr.Error()))
		}
		return status.Error(codes.InvalidArgument, addErrorTypeToMessage(errorTypeEntryCorrupt, err.Error()))
	}

	return status.Error(codes.Internal, addErrorTypeToMessage(errorTypeInternalError, err.Error()))
}

// StatusToError converts grpc status error to error
func StatusToError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	errorType, details, _ := extractErrorInfoFromMessage(st.Message())

	switch errorType {
	case errorTypeEntryNotFound:
		if len(details) >= 1 {
			return NewEntryNotFoundError(details[0])
		}
		return NewEntryNotFoundError("")
	case errorTypeEntryCorrupt:
		if len(details) >= 1 {
			return NewEntryCorruptError(details[0])
		}
		return NewEntryCorruptError("")
	default:
		return err
	}
}
