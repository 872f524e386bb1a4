package resolve

import (
	"context"

	"github.com/viant/afs"
)

var localFS = afs.New()

// FileExists reports whether name exists on the local filesystem. It is
// the default probe used when Params.FileExists is nil.
func FileExists(name string) bool {
	return ExistsIn(context.Background(), localFS)(name)
}

// ExistsIn adapts an afs service into an ExistsFunc. Probe errors count
// as "does not exist".
func ExistsIn(ctx context.Context, fs afs.Service) ExistsFunc {
	return func(name string) bool {
		ok, err := fs.Exists(ctx, name)

		return err == nil && ok
	}
}
