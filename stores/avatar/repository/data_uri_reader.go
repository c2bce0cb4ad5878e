package repository

import (
	"encoding/base64"
	"net/url"
	"strings"

	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/domain"
	"golang.org/x/xerrors"
)

const dataUriSchema = "data:"

type dataUriReaderRepo struct {
}

func NewDataUriReaderRepo() domain.WebResourceReader {
	return &dataUriReaderRepo{}
}

func (r *dataUriReaderRepo) Get(_ ctx.Ctx, uri string) ([]byte, error) {
	if !strings.HasPrefix(uri, dataUriSchema) {
		return nil, xerrors.Errorf("invalid data uri")
	}
	// data:[<mediatype>][;base64],<data>
	uriParts := strings.SplitN(strings.TrimPrefix(uri, dataUriSchema), ",", 2)
	if len(uriParts) < 2 || len(uriParts[1]) == 0 {
		return nil, xerrors.Errorf("no data part provided")
	}

	if strings.HasSuffix(uriParts[0], ";base64") {
		b, err := base64.StdEncoding.DecodeString(uriParts[1])
		if err != nil {
			return nil, xerrors.Errorf("invalid base64 data: %w", err)
		}
		return b, nil
	}
	// percent encoded text, tokenURI json is often embedded raw
	if decoded, err := url.PathUnescape(uriParts[1]); err == nil {
		return []byte(decoded), nil
	}
	return []byte(uriParts[1]), nil
}
