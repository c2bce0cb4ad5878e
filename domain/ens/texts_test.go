package ens

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextKeyWarning(t *testing.T) {
	for _, k := range []string{"avatar", "url", "com.twitter", "com.myapp", "xyz.team-1.profile"} {
		assert.Empty(t, TextKeyWarning(k), k)
	}
	for _, k := range []string{"twitter", "my key", "a.b", "com."} {
		w := TextKeyWarning(k)
		assert.Contains(t, w, `"`+k+`" is not a standard ENSIP-5 key`, k)
		assert.Contains(t, w, "reverse-DNS", k)
	}
}
