package commons

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestErrorToStatusRoundTrip(t *testing.T) {
	notFound := ErrorToStatus(NewEntryNotFoundError("study:0:40:400"))
	st, ok := status.FromError(notFound)
	require.True(t, ok)
	assert.Equal(t, codes.NotFound, st.Code())

	converted := StatusToError(notFound)
	assert.True(t, IsEntryNotFoundError(converted))

	var entryNotFoundErr *EntryNotFoundError
	require.ErrorAs(t, converted, &entryNotFoundErr)
	assert.Equal(t, "study:0:40:400", entryNotFoundErr.Key)

	corrupt := ErrorToStatus(NewEntryCorruptError("key1"))
	st, ok = status.FromError(corrupt)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.True(t, IsEntryCorruptError(StatusToError(corrupt)))
}

func TestStatusToErrorPassesUnknownThrough(t *testing.T) {
	err := status.Error(codes.Unavailable, "connection refused")
	converted := StatusToError(err)

	assert.False(t, IsEntryNotFoundError(converted))
	assert.False(t, IsEntryCorruptError(converted))
	assert.Error(t, converted)
}
