package repository

import (
	"io"
	"time"

	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/domain"
	"golang.org/x/xerrors"
)

type ipfsNodeApiReaderRepo struct {
	shell      *ipfsapi.Shell
	ctxTimeout time.Duration
}

// NewIpfsNodeApiReaderRepo reads "<cid>/<path>" with `cat` on a local ipfs node
func NewIpfsNodeApiReaderRepo(s *ipfsapi.Shell, timeout time.Duration) domain.WebResourceReader {
	return &ipfsNodeApiReaderRepo{shell: s, ctxTimeout: timeout}
}

func (r *ipfsNodeApiReaderRepo) Get(c ctx.Ctx, cid string) ([]byte, error) {
	ctx, cancel := ctx.WithTimeout(c, r.ctxTimeout)
	defer cancel()
	resp, err := r.shell.Request("cat", cid).Send(ctx)
	if err != nil {
		c.WithField("err", err).Error("shell.Request failed")
		return nil, err
	}
	defer resp.Close()
	if resp.Error != nil {
		c.WithField("resp.Error", resp.Error).Error("shell.Request failed")
		return nil, resp.Error
	}
	body, err := io.ReadAll(io.LimitReader(resp.Output, MaxBodyBytes+1))
	if err != nil {
		return nil, err
	}
	if len(body) > MaxBodyBytes {
		return nil, xerrors.Errorf("ipfs object %s exceeds %d bytes", cid, MaxBodyBytes)
	}
	return body, nil
}
