package repository

import (
	"io"
	"net/http"
	"time"

	bCtx "github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/base/log"
	"github.com/x-xyz/ensagent/domain"
	"golang.org/x/xerrors"
)

// MaxBodyBytes caps a metadata document
const MaxBodyBytes = 2 << 20

type httpReaderRepo struct {
	client     *http.Client
	ctxTimeout time.Duration
	headers    map[string]string
}

func NewHttpReaderRepo(client *http.Client, timeout time.Duration, headers map[string]string) domain.WebResourceReader {
	return &httpReaderRepo{client: client, ctxTimeout: timeout, headers: headers}
}

func (r *httpReaderRepo) Get(c bCtx.Ctx, url string) ([]byte, error) {
	return fetch(c, r.client, r.ctxTimeout, url, r.headers)
}

// fetch GETs url and expects a 200 reply no larger than MaxBodyBytes
func fetch(c bCtx.Ctx, client *http.Client, timeout time.Duration, url string, headers map[string]string) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(c, timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Warn("failed with request")
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Warn("unexpected status code")
		return nil, xerrors.Errorf("metadata fetch failed: %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes+1))
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return nil, err
	}
	if len(body) > MaxBodyBytes {
		return nil, xerrors.Errorf("body of %s exceeds %d bytes", url, MaxBodyBytes)
	}
	return body, nil
}
