package repository

import (
	"net/http"
	"strings"
	"time"

	bCtx "github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/domain"
	"golang.org/x/xerrors"
)

const (
	arUriSchema = "ar://"

	DefaultArweaveGateway = "https://arweave.net"
)

type arReaderRepo struct {
	client     *http.Client
	gateway    string
	ctxTimeout time.Duration
}

func NewArReaderRepo(client *http.Client, gateway string, timeout time.Duration) domain.WebResourceReader {
	if gateway == "" {
		gateway = DefaultArweaveGateway
	}
	return &arReaderRepo{client: client, gateway: strings.TrimSuffix(gateway, "/"), ctxTimeout: timeout}
}

func (r *arReaderRepo) Get(c bCtx.Ctx, uri string) ([]byte, error) {
	if !strings.HasPrefix(uri, arUriSchema) {
		return nil, xerrors.Errorf("invalid ar uri")
	}
	url := r.gateway + "/" + strings.TrimPrefix(uri, arUriSchema)
	return fetch(c, r.client, r.ctxTimeout, url, nil)
}
