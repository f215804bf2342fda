package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmgilman/go/safefs/fs/core"
)

func TestFSType_String(t *testing.T) {
	var zero core.FSType
	tests := map[core.FSType]string{
		zero:              "unknown",
		core.FSTypeLocal:  "local",
		core.FSTypeMemory: "memory",
		core.FSTypeRemote: "remote",
		core.FSType(42):   "unknown",
	}
	for typ, want := range tests {
		assert.Equal(t, want, typ.String(), "FSType(%d)", int(typ))
	}
}
