package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"numroute/internal/domain/entity"
)

func TestFetcherFetch(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		status  int
		body    string
		payload entity.ContactPayload
		errMsg  string
		errCode int
	}{
		{
			name:   "Both lists",
			status: http.StatusOK,
			body:   `{"ads":{"whatsapp":["5491111111111","1122223333"]},"whatsapp":["5491100000000"]}`,
			payload: entity.ContactPayload{
				Ads:    []string{"5491111111111", "1122223333"},
				Normal: []string{"5491100000000"},
			},
		},
		{
			name:    "Missing lists decode as empty",
			status:  http.StatusOK,
			body:    `{"ads":{}}`,
			payload: entity.ContactPayload{},
		},
		{
			name:    "Non array lists decode as empty",
			status:  http.StatusOK,
			body:    `{"ads":{"whatsapp":"5491111111111"},"whatsapp":{"a":1}}`,
			payload: entity.ContactPayload{},
		},
		{
			name:   "Numbers kept, other elements dropped",
			status: http.StatusOK,
			body:   `{"ads":{"whatsapp":[5491111111111,null,{"n":1},"1122223333",true]}}`,
			payload: entity.ContactPayload{
				Ads: []string{"5491111111111", "1122223333"},
			},
		},
		{
			name:   "Non 2xx status",
			status: http.StatusServiceUnavailable,
			body:   `{"ads":{"whatsapp":["5491111111111"]}}`,
			errMsg: "HTTP 503", errCode: http.StatusServiceUnavailable,
		},
		{
			name:   "Malformed body",
			status: http.StatusOK,
			body:   `{"ads":`,
			errMsg: "malformed JSON body",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			resp, err := NewFetcher(srv.Client(), time.Second).Fetch(context.Background(), srv.URL)

			if tc.errMsg != "" {
				var fetchErr *FetchError
				rq.ErrorAs(err, &fetchErr)
				rq.Equal(tc.errMsg, fetchErr.Message)
				rq.Equal(tc.errCode, fetchErr.Status)
				return
			}

			rq.NoError(err)
			rq.Equal(http.StatusOK, resp.Status)
			rq.ElementsMatch(tc.payload.Ads, resp.Payload.Ads)
			rq.ElementsMatch(tc.payload.Normal, resp.Payload.Normal)
		})
	}
}

func TestFetcherTimeout(t *testing.T) {
	rq := require.New(t)

	release := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	started := time.Now()
	_, err := NewFetcher(srv.Client(), 50*time.Millisecond).Fetch(context.Background(), srv.URL)

	var fetchErr *FetchError
	rq.ErrorAs(err, &fetchErr)
	rq.Zero(fetchErr.Status)
	rq.Contains(fetchErr.Message, "timeout")
	rq.True(errors.Is(err, context.DeadlineExceeded))
	rq.Less(time.Since(started), 2*time.Second)
}

func TestFetcherTransportError(t *testing.T) {
	rq := require.New(t)

	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	_, err := NewFetcher(nil, time.Second).Fetch(context.Background(), addr)

	var fetchErr *FetchError
	rq.ErrorAs(err, &fetchErr)
	rq.Zero(fetchErr.Status)
	rq.NotEmpty(fetchErr.Message)
}
