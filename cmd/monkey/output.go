package main

import (
	"fmt"
	"io"

	"github.com/lyraproj/monkey-evaluator/config"
	"github.com/lyraproj/monkey-evaluator/monkey"
	"github.com/lyraproj/monkey-evaluator/proto"
)

// printer writes results in the configured format. The json format writes one JSON object
// per line and the proto format writes length delimited messages.
type printer struct {
	format   string
	out      io.Writer
	withName bool
}

func (p *printer) print(r *monkey.Result) error {
	switch p.format {
	case config.FormatJSON:
		js, err := proto.MarshalJSON(proto.ResultToPBData(r.Name, r.Value, r.ParseErrors, r.Err))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(p.out, js)
		return err
	case config.FormatProto:
		return proto.WriteDelimited(p.out, proto.ResultToPBData(r.Name, r.Value, r.ParseErrors, r.Err))
	default:
		return p.printText(r)
	}
}

func (p *printer) printText(r *monkey.Result) (err error) {
	prefix := ""
	if p.withName {
		prefix = r.Name + ": "
	}
	switch {
	case len(r.ParseErrors) > 0:
		if _, err = fmt.Fprintf(p.out, "%sparser errors:\n", prefix); err != nil {
			return
		}
		for _, pe := range r.ParseErrors {
			if _, err = fmt.Fprintf(p.out, "\t%s\n", pe); err != nil {
				return
			}
		}
	case r.Err != nil:
		_, err = fmt.Fprintf(p.out, "%serror: %s\n", prefix, r.Err)
	default:
		_, err = fmt.Fprintf(p.out, "%s%s\n", prefix, r.Value)
	}
	return
}
