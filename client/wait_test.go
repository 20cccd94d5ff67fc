package client

import (
	"context"
	stderrors "errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mezonai/wavesgo/errors"
	"github.com/mezonai/wavesgo/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const notFoundBody = `{"error":311,"message":"transactions does not exist"}`

func TestWaitForTransactionRetriesUntilFound(t *testing.T) {
	signed := signedTransfer(t)
	var calls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/transactions/info/"+testTxID, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			writeJSON(w, http.StatusNotFound, notFoundBody)
			return
		}
		writeJSON(w, http.StatusOK, infoJSON(t, signed))
	})
	c := newTestNode(t, mux)
	id, err := types.NewIDFromString(testTxID)
	require.NoError(t, err)

	info, err := c.WaitForTransaction(context.Background(), id, 5*time.Millisecond, 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, uint32(1234), info.Height)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestWaitForTransactionReturnsLastError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/transactions/info/"+testTxID, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, notFoundBody)
	})
	c := newTestNode(t, mux)
	id, err := types.NewIDFromString(testTxID)
	require.NoError(t, err)

	_, err = c.WaitForTransaction(context.Background(), id, 5*time.Millisecond, 30*time.Millisecond)
	require.Error(t, err)
	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errors.KindNodeError, e.Kind)
	assert.Equal(t, 311, e.Code)
}

func TestWaitForTransactionHonorsCancellation(t *testing.T) {
	mux := http.NewServeMux()
	c := newTestNode(t, mux)
	id, err := types.NewIDFromString(testTxID)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.WaitForTransaction(ctx, id, time.Hour, time.Hour)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, context.Canceled))
	assert.Equal(t, errors.KindIoError, errors.KindOf(err))
}
