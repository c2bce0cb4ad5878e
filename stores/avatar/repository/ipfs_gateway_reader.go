package repository

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	bCtx "github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/domain"
)

type ipfsGatewayReaderRepo struct {
	client     *http.Client
	gateway    string
	ctxTimeout time.Duration
}

// NewIpfsGatewayReaderRepo reads "<cid>/<path>" through an http gateway such as https://ipfs.io
func NewIpfsGatewayReaderRepo(c *http.Client, gateway string, timeout time.Duration) domain.WebResourceReader {
	return &ipfsGatewayReaderRepo{client: c, gateway: strings.TrimSuffix(gateway, "/"), ctxTimeout: timeout}
}

func (r *ipfsGatewayReaderRepo) Get(c bCtx.Ctx, cid string) ([]byte, error) {
	url := fmt.Sprintf("%s/ipfs/%s", r.gateway, cid)
	return fetch(bCtx.WithValue(c, "cid", cid), r.client, r.ctxTimeout, url, nil)
}
