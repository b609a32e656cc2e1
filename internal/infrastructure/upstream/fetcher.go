package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"numroute/internal/domain/entity"
)

const maxBodySize = 1 << 20

var errMalformedBody = errors.New("malformed JSON body")

// Response is one successful attempt.
type Response struct {
	Payload entity.ContactPayload
	Elapsed time.Duration
	Status  int
}

// Fetcher performs a single GET bounded by timeout. Every failure is a
// *FetchError.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

func NewFetcher(client *http.Client, timeout time.Duration) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}

	return &Fetcher{
		client:  client,
		timeout: timeout,
	}
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (Response, error) {
	started := time.Now()

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Response{}, transportError(fmt.Errorf("http.NewRequestWithContext: %w", err), time.Since(started))
	}

	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("timeout after %s: %w", f.timeout, context.DeadlineExceeded)
		}

		return Response{}, transportError(err, time.Since(started))
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))

		return Response{}, statusError(resp.StatusCode, time.Since(started))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("timeout after %s: %w", f.timeout, context.DeadlineExceeded)
		}

		return Response{}, transportError(fmt.Errorf("read body: %w", err), time.Since(started))
	}

	payload, err := decodePayload(body)
	if err != nil {
		return Response{}, transportError(err, time.Since(started))
	}

	return Response{
		Payload: payload,
		Elapsed: time.Since(started),
		Status:  resp.StatusCode,
	}, nil
}

// decodePayload reads ads.whatsapp and whatsapp. A missing or non-array list
// is empty; elements that are neither strings nor numbers are dropped.
func decodePayload(body []byte) (entity.ContactPayload, error) {
	if !json.Valid(body) {
		return entity.ContactPayload{}, errMalformedBody
	}

	return entity.ContactPayload{
		Ads:    stringList(json.Get(body, "ads", "whatsapp")),
		Normal: stringList(json.Get(body, "whatsapp")),
	}, nil
}

func stringList(node jsoniter.Any) []string {
	if node.ValueType() != jsoniter.ArrayValue {
		return nil
	}

	result := make([]string, 0, node.Size())

	for i := range node.Size() {
		item := node.Get(i)

		switch item.ValueType() {
		case jsoniter.StringValue, jsoniter.NumberValue:
			result = append(result, item.ToString())
		default:
		}
	}

	return result
}
