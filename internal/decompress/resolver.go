package decompress

import (
	"io"

	"github.com/retroenv/retrogolib/log"

	"github.com/yegorkir/jpegcli/internal/common"
	"github.com/yegorkir/jpegcli/internal/switches"
)

// Resolver runs the two decompress passes over one argument list.
type Resolver struct {
	sw *switches.Resolver[Params]
}

// NewResolver returns a resolver that writes the version banner to out.
func NewResolver(out io.Writer, logger *log.Logger) *Resolver {
	return &Resolver{
		sw: switches.NewResolver(Table, common.Banner("decompress"), out, logger),
	}
}

// Trial scans args to locate the first file name and the output format.
func (r *Resolver) Trial(args []string) (Params, int, error) {
	p := DefaultParams()
	idx, err := r.sw.Scan(&p, args, false)
	return p, idx, err
}

// Commit rescans args once the input header has been read. Nothing in the
// decompress record depends on the order of the codec calls, so there is
// no deferred sequence.
func (r *Resolver) Commit(args []string) (Params, int, error) {
	p := DefaultParams()
	idx, err := r.sw.Scan(&p, args, true)
	return p, idx, err
}
