package domain

import (
	"github.com/x-xyz/ensagent/base/ctx"
)

// WebResourceReader returns the bytes behind a uri of one scheme
type WebResourceReader interface {
	Get(c ctx.Ctx, uri string) ([]byte, error)
}
