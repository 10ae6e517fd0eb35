package transport

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wttj/ic-metrics/internal/mock"
)

func TestRetryDoerSucceedsAfterFailures(t *testing.T) {
	t.Parallel()

	var calls int
	doer := &mock.HTTPDoer{
		DoFunc: func(r *http.Request) (*http.Response, error) {
			calls++
			if calls < 3 {
				return nil, errors.New("connection reset")
			}
			return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
		},
	}

	retrying := NewRetryDoer(doer, 3, time.Millisecond)

	req, _ := http.NewRequest(http.MethodGet, "fakeurl", nil)
	resp, err := retrying.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, calls)
}

func TestRetryDoerGivesUp(t *testing.T) {
	t.Parallel()

	var calls int
	doer := &mock.HTTPDoer{
		DoFunc: func(r *http.Request) (*http.Response, error) {
			calls++
			return nil, errors.New("connection reset")
		},
	}

	retrying := NewRetryDoer(doer, 2, time.Millisecond)

	req, _ := http.NewRequest(http.MethodGet, "fakeurl", nil)
	_, err := retrying.Do(req)
	require.Error(t, err)
	// Initial attempt plus two retries.
	assert.Equal(t, 3, calls)
}

func TestRetryDoerDoesNotRetryStatusErrors(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		Statuses: []int{http.StatusInternalServerError},
	}

	retrying := NewRetryDoer(doer, 3, time.Millisecond)

	req, _ := http.NewRequest(http.MethodGet, "fakeurl", nil)
	resp, err := retrying.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Len(t, doer.Requests, 1)
}
