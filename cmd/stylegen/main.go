// Command stylegen writes the style tables as a resource script header or
// as JSON.
package main

import (
	"bytes"
	"flag"
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type options struct {
	format   string
	output   string
	families string
	check    bool
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if os.Getenv("STYLEGEN_DEBUG") != "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	opts := options{}
	flag.StringVar(&opts.format, "format", "h", "output format: h or json")
	flag.StringVar(&opts.output, "o", "", "output file (default stdout)")
	flag.StringVar(&opts.families, "family", "", "comma separated family prefixes, e.g. WS,LBS (default all)")
	flag.BoolVar(&opts.check, "check", false, "validate the tables and exit")
	flag.Parse()

	if err := run(opts, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("stylegen failed")
	}
}

func run(opts options, stdout io.Writer) error {
	fams, err := selectFamilies(opts.families)
	if err != nil {
		return err
	}
	log.Debug().Int("families", len(fams)).Str("format", opts.format).Msg("selected")

	if opts.check {
		errs := check(fams)
		for _, e := range errs {
			log.Error().Err(e).Msg("invalid family")
		}
		if len(errs) > 0 {
			return errors.Errorf("%d of %d families failed validation", len(errs), len(fams))
		}
		log.Info().Int("families", len(fams)).Msg("all families valid")
		return nil
	}

	buf := &bytes.Buffer{}
	if err := generate(buf, opts.format, fams); err != nil {
		return err
	}
	if opts.output == "" {
		_, err = stdout.Write(buf.Bytes())
		return errors.Wrap(err, "unable to write output")
	}
	if err := ioutil.WriteFile(opts.output, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "unable to write %s", opts.output)
	}
	log.Info().Str("file", opts.output).Int("bytes", buf.Len()).Msg("written")
	return nil
}
