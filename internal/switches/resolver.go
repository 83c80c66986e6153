package switches

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrogolib/log"
)

// NoFile is the file index reported when the arguments hold no file name.
const NoFile = -1

// Resolver scans an argument list against a switch table. The same scan
// serves both passes; commit decides whether colour-space-dependent effects
// reach the record.
//
// A Resolver is not safe for concurrent use. It remembers whether the
// version banner was printed so that repeated passes print it once.
type Resolver[R any] struct {
	table   Table[R]
	matcher Matcher
	banner  string
	out     io.Writer
	logger  *log.Logger
	printed bool
}

// NewResolver returns a resolver for table. banner is written to out the
// first time a banner switch is seen; out may be nil to suppress it.
func NewResolver[R any](table Table[R], banner string, out io.Writer, logger *log.Logger) *Resolver[R] {
	if logger == nil {
		logger = log.NewWithConfig(log.DefaultConfig())
	}
	return &Resolver[R]{
		table:   table,
		matcher: Matcher{FoldCase: true},
		banner:  banner,
		out:     out,
		logger:  logger,
	}
}

// BannerPrinted reports whether the version banner has been written.
func (r *Resolver[R]) BannerPrinted() bool { return r.printed }

// Scan applies the switches at the front of args to rec and returns the
// index of the first file name, or NoFile if every token was a switch.
//
// With commit false, effects of entries that aren't Independent are run
// against a scratch copy so that their values are still validated but rec
// keeps only pass-independent settings. On failure rec is left as far as
// the scan got; nothing is rolled back.
func (r *Resolver[R]) Scan(rec *R, args []string, commit bool) (int, error) {
	for argn := 0; argn < len(args); argn++ {
		arg := args[argn]
		if arg == "" || arg[0] != '-' {
			r.logger.Debug("File name found",
				log.String("arg", arg),
				log.Int("index", argn))
			return argn, nil
		}

		entry, ok := r.table.Lookup(r.matcher, strings.TrimPrefix(arg, "-"))
		if !ok {
			return NoFile, &Error{Arg: arg, Index: argn, Err: ErrUnknownSwitch}
		}

		var value string
		if entry.Arity > 0 {
			if argn+1 >= len(args) {
				return NoFile, &Error{Arg: arg, Index: argn, Err: ErrMissingValue}
			}
			argn++
			value = args[argn]
		}

		if entry.Banner {
			r.printBanner()
		}

		target := rec
		if !commit && !entry.Independent {
			scratch := *rec
			target = &scratch
		}
		if err := entry.Apply(target, value); err != nil {
			return NoFile, &Error{Arg: arg, Index: argn - entry.Arity, Err: err}
		}

		r.logger.Debug("Switch applied",
			log.String("switch", entry.Name()),
			log.String("value", value),
			log.Bool("commit", commit))
	}
	return NoFile, nil
}

func (r *Resolver[R]) printBanner() {
	if r.printed {
		return
	}
	r.printed = true
	if r.out != nil && r.banner != "" {
		fmt.Fprintln(r.out, r.banner)
	}
}
